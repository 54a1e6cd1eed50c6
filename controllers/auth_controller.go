package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ottshare/ott-share-hub/auth"
	"github.com/ottshare/ott-share-hub/middleware"
	"github.com/ottshare/ott-share-hub/models"
	"github.com/ottshare/ott-share-hub/store"
	"github.com/ottshare/ott-share-hub/utils"
)

// AuthController handles registration, login and profile management.
type AuthController struct {
	store  *store.Store
	tokens *auth.Manager
}

// NewAuthController creates an AuthController.
func NewAuthController(st *store.Store, tokens *auth.Manager) *AuthController {
	return &AuthController{store: st, tokens: tokens}
}

// Register creates a local account and returns a fresh token.
func (a *AuthController) Register(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Phone    string `json:"phone"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" || req.Name == "" {
		utils.Fail(ctx, http.StatusBadRequest, "필수 정보를 입력해주세요.")
		return
	}

	if _, err := a.store.FindUserByEmail(req.Email); err == nil {
		utils.Fail(ctx, http.StatusBadRequest, "이미 사용 중인 이메일입니다.")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
		return
	}

	user := models.User{
		ID:           store.NewID(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         models.RoleUser,
		Phone:        req.Phone,
		Status:       models.StatusActive,
		CreatedAt:    time.Now(),
	}
	a.store.InsertUser(user)
	a.store.LogActivity(user.ID, models.ActionRegister, map[string]any{"email": user.Email})

	token, err := a.tokens.Issue(user.ID, user.Email, user.Role, user.Name)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
		return
	}

	utils.SuccessMsg(ctx, "회원가입이 완료되었습니다.", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// Login checks credentials and returns a fresh token. The error message never
// reveals which of email or password was wrong.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		utils.Fail(ctx, http.StatusBadRequest, "이메일과 비밀번호를 입력해주세요.")
		return
	}

	user, err := a.store.FindUserByEmail(req.Email)
	if err != nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.Fail(ctx, http.StatusUnauthorized, "이메일 또는 비밀번호가 올바르지 않습니다.")
		return
	}
	if user.Status == models.StatusInactive {
		utils.Fail(ctx, http.StatusForbidden, "비활성화된 계정입니다. 관리자에게 문의하세요.")
		return
	}

	user, err = a.store.UpdateUser(user.ID, func(u *models.User) {
		now := time.Now()
		u.LastLoginAt = &now
	})
	if err != nil {
		utils.FailErr(ctx, err, "사용자를 찾을 수 없습니다.")
		return
	}
	a.store.LogActivity(user.ID, models.ActionLogin, map[string]any{"email": user.Email})

	token, err := a.tokens.Issue(user.ID, user.Email, user.Role, user.Name)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
		return
	}

	utils.SuccessMsg(ctx, "로그인 성공", gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"name":         user.Name,
			"role":         user.Role,
			"phone":        user.Phone,
			"subscription": user.Subscription,
		},
	})
}

// Me returns the authenticated user's record.
func (a *AuthController) Me(ctx *gin.Context) {
	identity := middleware.Identity(ctx)
	user, err := a.store.FindUserByID(identity.UserID)
	if err != nil {
		utils.FailErr(ctx, err, "사용자를 찾을 수 없습니다.")
		return
	}
	utils.Success(ctx, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"name":         user.Name,
			"role":         user.Role,
			"phone":        user.Phone,
			"subscription": user.Subscription,
			"createdAt":    user.CreatedAt,
			"lastLoginAt":  user.LastLoginAt,
		},
	})
}

// UpdateProfile edits name, phone and optionally the password after
// re-checking the current one.
func (a *AuthController) UpdateProfile(ctx *gin.Context) {
	identity := middleware.Identity(ctx)
	user, err := a.store.FindUserByID(identity.UserID)
	if err != nil {
		utils.FailErr(ctx, err, "사용자를 찾을 수 없습니다.")
		return
	}

	var req struct {
		Name            string `json:"name"`
		Phone           string `json:"phone"`
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	newHash := ""
	if req.CurrentPassword != "" && req.NewPassword != "" {
		if !utils.CheckPassword(user.PasswordHash, req.CurrentPassword) {
			utils.Fail(ctx, http.StatusBadRequest, "현재 비밀번호가 올바르지 않습니다.")
			return
		}
		newHash, err = utils.HashPassword(req.NewPassword)
		if err != nil {
			utils.Fail(ctx, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
			return
		}
	}

	user, err = a.store.UpdateUser(user.ID, func(u *models.User) {
		if req.Name != "" {
			u.Name = req.Name
		}
		if req.Phone != "" {
			u.Phone = req.Phone
		}
		if newHash != "" {
			u.PasswordHash = newHash
		}
	})
	if err != nil {
		utils.FailErr(ctx, err, "사용자를 찾을 수 없습니다.")
		return
	}
	a.store.LogActivity(user.ID, models.ActionProfileUpdate, map[string]any{})

	utils.SuccessMsg(ctx, "프로필이 수정되었습니다.", gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"phone": user.Phone,
		},
	})
}
