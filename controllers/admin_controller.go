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

const adminPageSize = 20

// AdminController serves the back-office: user management, moderation views
// of posts and comments, and dashboard stats.
type AdminController struct {
	store *store.Store
}

// NewAdminController creates an AdminController.
func NewAdminController(st *store.Store) *AdminController {
	return &AdminController{store: st}
}

// adminUserView is the user shape exposed to the back-office: no password
// hash, no phone.
type adminUserView struct {
	ID           string               `json:"id"`
	Email        string               `json:"email"`
	Name         string               `json:"name"`
	Role         string               `json:"role"`
	Status       string               `json:"status"`
	Subscription *models.Subscription `json:"subscription"`
	CreatedAt    time.Time            `json:"createdAt"`
	LastLoginAt  *time.Time           `json:"lastLoginAt"`
}

// ListUsers returns users filtered by status, role and a name/email search,
// newest first.
func (a *AdminController) ListUsers(ctx *gin.Context) {
	params := query.ParseParams("", ctx.Query("search"),
		ctx.Query("page"), ctx.Query("limit"), adminPageSize)

	users := a.store.Users()
	if status := ctx.Query("status"); status != "" && status != "all" {
		users = query.Filter(users, func(u models.User) bool { return u.Status == status })
	}
	if role := ctx.Query("role"); role != "" && role != "all" {
		users = query.Filter(users, func(u models.User) bool { return u.Role == role })
	}

	page, pagination := query.Run(users, params, query.Source[models.User]{
		Fields:    func(u models.User) []string { return []string{u.Name, u.Email} },
		CreatedAt: func(u models.User) time.Time { return u.CreatedAt },
	})

	views := make([]adminUserView, 0, len(page))
	for _, u := range page {
		views = append(views, adminUserView{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			Role:         u.Role,
			Status:       u.Status,
			Subscription: u.Subscription,
			CreatedAt:    u.CreatedAt,
			LastLoginAt:  u.LastLoginAt,
		})
	}

	utils.Success(ctx, gin.H{"users": views, "pagination": pagination})
}

// UpdateUser changes a user's status and/or role.
func (a *AdminController) UpdateUser(ctx *gin.Context) {
	identity := middleware.Identity(ctx)

	var req struct {
		Status string `json:"status"`
		Role   string `json:"role"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	user, err := a.store.UpdateUser(ctx.Param("id"), func(u *models.User) {
		if req.Status != "" {
			u.Status = req.Status
		}
		if req.Role != "" {
			u.Role = req.Role
		}
	})
	if err != nil {
		utils.FailErr(ctx, err, "사용자를 찾을 수 없습니다.")
		return
	}
	a.store.LogActivity(identity.UserID, models.ActionUserUpdate, map[string]any{"targetUserId": user.ID})

	utils.SuccessMsg(ctx, "사용자 정보가 수정되었습니다.", gin.H{})
}

// DeleteUser removes a user. Accounts with the admin role are protected from
// deletion regardless of who asks.
func (a *AdminController) DeleteUser(ctx *gin.Context) {
	identity := middleware.Identity(ctx)

	user, err := a.store.FindUserByID(ctx.Param("id"))
	if err != nil {
		utils.FailErr(ctx, err, "사용자를 찾을 수 없습니다.")
		return
	}
	if err := policy.CanDeleteUser(identity, user); err != nil {
		utils.FailErr(ctx, err, "관리자 계정은 삭제할 수 없습니다.")
		return
	}

	if err := a.store.DeleteUser(user.ID); err != nil {
		utils.FailErr(ctx, err, "사용자를 찾을 수 없습니다.")
		return
	}
	a.store.LogActivity(identity.UserID, models.ActionUserDelete, map[string]any{"targetUserId": user.ID})

	utils.SuccessMsg(ctx, "사용자가 삭제되었습니다.", gin.H{})
}

// ListPosts is the moderation view of the board: searchable by title and
// author name, enriched with comment counts.
func (a *AdminController) ListPosts(ctx *gin.Context) {
	params := query.ParseParams(ctx.Query("category"), ctx.Query("search"),
		ctx.Query("page"), ctx.Query("limit"), adminPageSize)

	page, pagination := query.Run(a.store.Posts(), params, query.Source[models.Post]{
		Category:  func(p models.Post) string { return p.Category },
		Fields:    func(p models.Post) []string { return []string{p.Title, p.AuthorName} },
		CreatedAt: func(p models.Post) time.Time { return p.CreatedAt },
	})

	posts := make([]postWithCount, 0, len(page))
	for _, post := range page {
		posts = append(posts, postWithCount{
			Post:         post,
			CommentCount: a.store.CountCommentsByPost(post.ID),
		})
	}

	utils.Success(ctx, gin.H{"posts": posts, "pagination": pagination})
}

type commentWithPostTitle struct {
	models.Comment
	PostTitle string `json:"postTitle"`
}

// ListComments is the moderation view of comments, searchable by content and
// author name. Each comment carries its post title, with a sentinel for
// comments whose post id no longer resolves.
func (a *AdminController) ListComments(ctx *gin.Context) {
	params := query.ParseParams("", ctx.Query("search"),
		ctx.Query("page"), ctx.Query("limit"), adminPageSize)

	page, pagination := query.Run(a.store.Comments(), params, query.Source[models.Comment]{
		Fields:    func(c models.Comment) []string { return []string{c.Content, c.AuthorName} },
		CreatedAt: func(c models.Comment) time.Time { return c.CreatedAt },
	})

	comments := make([]commentWithPostTitle, 0, len(page))
	for _, comment := range page {
		title := "삭제된 게시물"
		if post, err := a.store.FindPost(comment.PostID); err == nil {
			title = post.Title
		}
		comments = append(comments, commentWithPostTitle{Comment: comment, PostTitle: title})
	}

	utils.Success(ctx, gin.H{"comments": comments, "pagination": pagination})
}

// Stats aggregates the dashboard counters.
func (a *AdminController) Stats(ctx *gin.Context) {
	users := a.store.Users()
	posts := a.store.Posts()

	activeUsers := 0
	for _, u := range users {
		if u.Status == models.StatusActive {
			activeUsers++
		}
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	recentUsers := 0
	for _, u := range users {
		if u.CreatedAt.After(weekAgo) {
			recentUsers++
		}
	}

	postsByCategory := map[string]int{}
	for _, c := range models.PostCategories {
		postsByCategory[c] = 0
	}
	for _, p := range posts {
		postsByCategory[p.Category]++
	}

	utils.Success(ctx, gin.H{
		"stats": gin.H{
			"totalUsers":      len(users),
			"activeUsers":     activeUsers,
			"totalPosts":      len(posts),
			"totalComments":   len(a.store.Comments()),
			"recentUsers":     recentUsers,
			"postsByCategory": postsByCategory,
		},
	})
}
