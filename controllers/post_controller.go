package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ottshare/ott-share-hub/middleware"
	"github.com/ottshare/ott-share-hub/models"
	"github.com/ottshare/ott-share-hub/policy"
	"github.com/ottshare/ott-share-hub/query"
	"github.com/ottshare/ott-share-hub/store"
	"github.com/ottshare/ott-share-hub/utils"
)

const defaultPostPageSize = 10

// PostController manages board posts and their comments.
type PostController struct {
	store *store.Store
}

// NewPostController creates a PostController.
func NewPostController(st *store.Store) *PostController {
	return &PostController{store: st}
}

type postWithCount struct {
	models.Post
	CommentCount int `json:"commentCount"`
}

func postSource() query.Source[models.Post] {
	return query.Source[models.Post]{
		Category:  func(p models.Post) string { return p.Category },
		Fields:    func(p models.Post) []string { return []string{p.Title, p.Content} },
		CreatedAt: func(p models.Post) time.Time { return p.CreatedAt },
	}
}

// ListPosts returns a filtered, paginated board page, newest first. Each
// returned post carries its comment count.
func (p *PostController) ListPosts(ctx *gin.Context) {
	params := query.ParseParams(ctx.Query("category"), ctx.Query("search"),
		ctx.Query("page"), ctx.Query("limit"), defaultPostPageSize)

	page, pagination := query.Run(p.store.Posts(), params, postSource())

	posts := make([]postWithCount, 0, len(page))
	for _, post := range page {
		posts = append(posts, postWithCount{
			Post:         post,
			CommentCount: p.store.CountCommentsByPost(post.ID),
		})
	}

	utils.Success(ctx, gin.H{"posts": posts, "pagination": pagination})
}

// GetPost returns a single post with its comments and bumps the view counter.
func (p *PostController) GetPost(ctx *gin.Context) {
	post, comments, err := p.store.ViewPost(ctx.Param("id"))
	if err != nil {
		utils.FailErr(ctx, err, "게시물을 찾을 수 없습니다.")
		return
	}

	detail := struct {
		models.Post
		Comments []models.Comment `json:"comments"`
	}{Post: post, Comments: comments}

	utils.Success(ctx, gin.H{"post": detail})
}

// CreatePost creates a post authored by the authenticated user. The author
// name is snapshotted from the identity at creation time.
func (p *PostController) CreatePost(ctx *gin.Context) {
	identity := middleware.Identity(ctx)

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" {
		utils.Fail(ctx, http.StatusBadRequest, "제목과 내용을 입력해주세요.")
		return
	}

	category := req.Category
	if category == "" {
		category = models.CategoryFree
	}
	if !models.ValidCategory(category) {
		utils.Fail(ctx, http.StatusBadRequest, "유효하지 않은 카테고리입니다.")
		return
	}

	now := time.Now()
	post := models.Post{
		ID:         store.NewID(),
		Title:      utils.Sanitize(req.Title),
		Content:    utils.Sanitize(req.Content),
		Category:   category,
		AuthorID:   identity.UserID,
		AuthorName: identity.Name,
		Views:      0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	p.store.InsertPost(post)
	p.store.LogActivity(identity.UserID, models.ActionPostCreate, map[string]any{"postId": post.ID})

	utils.SuccessMsg(ctx, "게시물이 작성되었습니다.", gin.H{"post": post})
}

// UpdatePost lets the author or an admin edit a post.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	identity := middleware.Identity(ctx)

	post, err := p.store.FindPost(ctx.Param("id"))
	if err != nil {
		utils.FailErr(ctx, err, "게시물을 찾을 수 없습니다.")
		return
	}
	if err := policy.CanModify(identity, post.AuthorID); err != nil {
		utils.FailErr(ctx, err, "수정 권한이 없습니다.")
		return
	}

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	if req.Category != "" && !models.ValidCategory(req.Category) {
		utils.Fail(ctx, http.StatusBadRequest, "유효하지 않은 카테고리입니다.")
		return
	}

	post, err = p.store.UpdatePost(post.ID, func(stored *models.Post) {
		if req.Title != "" {
			stored.Title = utils.Sanitize(req.Title)
		}
		if req.Content != "" {
			stored.Content = utils.Sanitize(req.Content)
		}
		if req.Category != "" {
			stored.Category = req.Category
		}
		stored.UpdatedAt = time.Now()
	})
	if err != nil {
		utils.FailErr(ctx, err, "게시물을 찾을 수 없습니다.")
		return
	}
	p.store.LogActivity(identity.UserID, models.ActionPostUpdate, map[string]any{"postId": post.ID})

	utils.SuccessMsg(ctx, "게시물이 수정되었습니다.", gin.H{"post": post})
}

// DeletePost removes a post and cascades to its comments.
func (p *PostController) DeletePost(ctx *gin.Context) {
	identity := middleware.Identity(ctx)

	post, err := p.store.FindPost(ctx.Param("id"))
	if err != nil {
		utils.FailErr(ctx, err, "게시물을 찾을 수 없습니다.")
		return
	}
	if err := policy.CanModify(identity, post.AuthorID); err != nil {
		utils.FailErr(ctx, err, "삭제 권한이 없습니다.")
		return
	}

	if err := p.store.DeletePost(post.ID); err != nil {
		utils.FailErr(ctx, err, "게시물을 찾을 수 없습니다.")
		return
	}
	p.store.LogActivity(identity.UserID, models.ActionPostDelete, map[string]any{"postId": post.ID})

	utils.SuccessMsg(ctx, "게시물이 삭제되었습니다.", gin.H{})
}

// CreateComment adds a comment under an existing post.
func (p *PostController) CreateComment(ctx *gin.Context) {
	identity := middleware.Identity(ctx)

	post, err := p.store.FindPost(ctx.Param("id"))
	if err != nil {
		utils.FailErr(ctx, err, "게시물을 찾을 수 없습니다.")
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Content == "" {
		utils.Fail(ctx, http.StatusBadRequest, "댓글 내용을 입력해주세요.")
		return
	}

	now := time.Now()
	comment := models.Comment{
		ID:         store.NewID(),
		PostID:     post.ID,
		Content:    utils.Sanitize(req.Content),
		AuthorID:   identity.UserID,
		AuthorName: identity.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	p.store.InsertComment(comment)
	p.store.LogActivity(identity.UserID, models.ActionCommentCreate,
		map[string]any{"postId": post.ID, "commentId": comment.ID})

	utils.SuccessMsg(ctx, "댓글이 작성되었습니다.", gin.H{"comment": comment})
}

// UpdateComment lets the author or an admin edit a comment.
func (p *PostController) UpdateComment(ctx *gin.Context) {
	identity := middleware.Identity(ctx)

	comment, err := p.store.FindComment(ctx.Param("id"))
	if err != nil {
		utils.FailErr(ctx, err, "댓글을 찾을 수 없습니다.")
		return
	}
	if err := policy.CanModify(identity, comment.AuthorID); err != nil {
		utils.FailErr(ctx, err, "수정 권한이 없습니다.")
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Content == "" {
		utils.Fail(ctx, http.StatusBadRequest, "댓글 내용을 입력해주세요.")
		return
	}

	comment, err = p.store.UpdateComment(comment.ID, func(stored *models.Comment) {
		stored.Content = utils.Sanitize(req.Content)
		stored.UpdatedAt = time.Now()
	})
	if err != nil {
		utils.FailErr(ctx, err, "댓글을 찾을 수 없습니다.")
		return
	}
	p.store.LogActivity(identity.UserID, models.ActionCommentUpdate, map[string]any{"commentId": comment.ID})

	utils.SuccessMsg(ctx, "댓글이 수정되었습니다.", gin.H{"comment": comment})
}

// DeleteComment removes a comment.
func (p *PostController) DeleteComment(ctx *gin.Context) {
	identity := middleware.Identity(ctx)

	comment, err := p.store.FindComment(ctx.Param("id"))
	if err != nil {
		utils.FailErr(ctx, err, "댓글을 찾을 수 없습니다.")
		return
	}
	if err := policy.CanModify(identity, comment.AuthorID); err != nil {
		utils.FailErr(ctx, err, "삭제 권한이 없습니다.")
		return
	}

	if err := p.store.DeleteComment(comment.ID); err != nil {
		utils.FailErr(ctx, err, "댓글을 찾을 수 없습니다.")
		return
	}
	p.store.LogActivity(identity.UserID, models.ActionCommentDelete, map[string]any{"commentId": comment.ID})

	utils.SuccessMsg(ctx, "댓글이 삭제되었습니다.", gin.H{})
}
