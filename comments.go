package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/godruoyi/go-snowflake"

	"github.com/ip812/helloadp/articles"
	"github.com/ip812/helloadp/content"
	"github.com/ip812/helloadp/database"
	"github.com/ip812/helloadp/locales"
	"github.com/ip812/helloadp/o11y"
	"github.com/ip812/helloadp/status"
	"github.com/ip812/helloadp/templates/views"
	"github.com/ip812/helloadp/utils"
)

type createCommentRequest struct {
	Page    string `form:"page" validate:"required,startswith=/"`
	Content string `form:"content" validate:"required,min=1,max=2000"`
}

func (hnd *Handler) queries() (*database.Queries, error) {
	return queriesFrom(hnd.db)
}

func (hnd *Handler) listComments(ctx context.Context, pageURL, lang string) ([]views.CommentView, error) {
	q, err := hnd.queries()
	if err != nil {
		return nil, err
	}

	rows, err := q.ListCommentsByPage(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", status.ErrGetAllComments, err)
	}

	now := hnd.now()
	tag := locales.Tag(lang)
	out := make([]views.CommentView, 0, len(rows))
	for _, c := range rows {
		out = append(out, views.CommentView{
			Username:     c.Username,
			AvatarURL:    getAvatarURL(c.Username),
			Content:      c.Content,
			CreatedLabel: articles.RelativeTime(content.Resolved(c.CreatedAt), now, tag),
		})
	}
	return out, nil
}

func (hnd *Handler) GetCommentsByPage(w http.ResponseWriter, r *http.Request) error {
	if _, err := hnd.db.DB(); err != nil {
		return status.ErrorServiceUnavailable(status.ErrDatabaseNotReady)
	}

	pageURL := r.URL.Query().Get("page")
	p, ok := hnd.site.source.PageByURL(pageURL)
	if !ok {
		return status.WarningStatusNotFound(status.WarnUnknownPage)
	}

	comments, err := hnd.listComments(r.Context(), p.URL, p.Lang)
	if err != nil {
		hnd.log.Error("%v", err)
		return status.ErrorInternalServerError(status.ErrGetAllComments)
	}

	return utils.Render(w, r, views.CommentList(comments))
}

func (hnd *Handler) CreateComment(w http.ResponseWriter, r *http.Request) error {
	q, err := hnd.queries()
	if err != nil {
		return status.ErrorServiceUnavailable(status.ErrDatabaseNotReady)
	}

	if err := r.ParseForm(); err != nil {
		hnd.log.Warn("%s: %v", status.ErrParsingForm, err)
		return status.WarningStatusBadRequest(status.ErrParsingForm)
	}

	var req createCommentRequest
	if err := hnd.formDecoder.Decode(&req, r.PostForm); err != nil {
		hnd.log.Warn("%s: %v", status.ErrDecodingForm, err)
		return status.WarningStatusBadRequest(status.ErrDecodingForm)
	}
	req.Content = strings.TrimSpace(req.Content)

	if err := hnd.formValidator.Struct(req); err != nil {
		hnd.log.Debug("%s: %v", status.ErrFailedToValidateRequest, err)
		return status.WarningStatusBadRequest(status.WarnInvalidComment)
	}

	p, ok := hnd.site.source.PageByURL(req.Page)
	if !ok {
		return status.WarningStatusNotFound(status.WarnUnknownPage)
	}

	username := commenterName(w, r)
	_, err = q.CreateComment(r.Context(), database.CreateCommentParams{
		ID:       int64(snowflake.ID()),
		PageUrl:  p.URL,
		Username: username,
		Content:  req.Content,
	})
	if err != nil {
		hnd.log.Error("%s: %v", status.ErrCreateComment, err)
		return status.ErrorInternalServerError(status.ErrCreateComment)
	}
	o11y.CommentsCreated.Inc()

	if err := hnd.slacknotifier.NotifyComment(hnd.config.Slack.CommentsChannelID, hnd.config.App.BaseURL+p.URL, username, req.Content); err != nil {
		hnd.log.Warn("failed to notify about a comment on %s: %v", p.URL, err)
	}

	http.Redirect(w, r, p.URL+"#comments", http.StatusSeeOther)
	return nil
}
