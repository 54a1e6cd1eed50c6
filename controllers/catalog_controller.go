package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ottshare/ott-share-hub/middleware"
	"github.com/ottshare/ott-share-hub/models"
	"github.com/ottshare/ott-share-hub/query"
	"github.com/ottshare/ott-share-hub/store"
	"github.com/ottshare/ott-share-hub/utils"
)

// CatalogController serves the OTT service catalog, the plan list and
// subscription purchases. Catalog writes are admin-only, wired behind the
// admin route group.
type CatalogController struct {
	store *store.Store
}

// NewCatalogController creates a CatalogController.
func NewCatalogController(st *store.Store) *CatalogController {
	return &CatalogController{store: st}
}

// ListServices returns the catalog, optionally narrowed by category and a
// name/description search. The catalog keeps its seed order and is small
// enough to skip pagination.
func (c *CatalogController) ListServices(ctx *gin.Context) {
	params := query.ParseParams(ctx.Query("category"), ctx.Query("search"), "", "", 0)

	services := c.store.Services()
	if params.Category != "" {
		services = query.Filter(services, func(s models.OttService) bool {
			return s.Category == params.Category
		})
	}
	if params.Search != "" {
		services = query.Filter(services, func(s models.OttService) bool {
			return query.MatchesSearch(params.Search, s.Name, s.Description)
		})
	}

	utils.Success(ctx, gin.H{"services": services})
}

// GetService returns one catalog entry.
func (c *CatalogController) GetService(ctx *gin.Context) {
	service, err := c.store.FindService(ctx.Param("id"))
	if err != nil {
		utils.FailErr(ctx, err, "OTT 서비스를 찾을 수 없습니다.")
		return
	}
	utils.Success(ctx, gin.H{"service": service})
}

// ListPlans returns the fixed pricing plans.
func (c *CatalogController) ListPlans(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"plans": c.store.Plans()})
}

// Subscribe attaches a plan to the authenticated user for 30 days,
// unconditionally replacing any existing subscription.
func (c *CatalogController) Subscribe(ctx *gin.Context) {
	identity := middleware.Identity(ctx)

	var req struct {
		PlanID string `json:"planId"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	plan, err := c.store.FindPlan(req.PlanID)
	if err != nil {
		utils.FailErr(ctx, err, "요금제를 찾을 수 없습니다.")
		return
	}

	now := time.Now()
	subscription := &models.Subscription{
		PlanID:    plan.ID,
		PlanName:  plan.Name,
		Price:     plan.Price,
		StartDate: now,
		EndDate:   now.Add(30 * 24 * time.Hour),
	}
	if _, err := c.store.UpdateUser(identity.UserID, func(u *models.User) {
		u.Subscription = subscription
	}); err != nil {
		utils.FailErr(ctx, err, "사용자를 찾을 수 없습니다.")
		return
	}
	c.store.LogActivity(identity.UserID, models.ActionSubscription, map[string]any{"planId": plan.ID})

	utils.SuccessMsg(ctx, plan.Name+" 플랜 구독이 완료되었습니다.", gin.H{"subscription": subscription})
}

// CreateService adds a catalog entry. Name and price are required; the rest
// fall back to catalog defaults.
func (c *CatalogController) CreateService(ctx *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Logo        string `json:"logo"`
		Price       int    `json:"price"`
		MaxMembers  int    `json:"maxMembers"`
		Category    string `json:"category"`
		Color       string `json:"color"`
		Description string `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Price == 0 {
		utils.Fail(ctx, http.StatusBadRequest, "서비스 이름과 가격은 필수입니다.")
		return
	}

	service := models.OttService{
		ID:          store.NewID(),
		Name:        req.Name,
		Logo:        req.Logo,
		Price:       req.Price,
		MaxMembers:  req.MaxMembers,
		Category:    req.Category,
		Color:       req.Color,
		Description: req.Description,
	}
	if service.Logo == "" {
		service.Logo = "📺"
	}
	if service.MaxMembers == 0 {
		service.MaxMembers = 4
	}
	if service.Category == "" {
		service.Category = "영화/드라마"
	}
	if service.Color == "" {
		service.Color = "#333"
	}

	c.store.InsertService(service)
	c.store.LogActivity(middleware.Identity(ctx).UserID, models.ActionOttCreate, map[string]any{"serviceId": service.ID})
	utils.SuccessMsg(ctx, "OTT 서비스가 추가되었습니다.", gin.H{"service": service})
}

// UpdateService applies partial edits to a catalog entry.
func (c *CatalogController) UpdateService(ctx *gin.Context) {
	var req struct {
		Name        string  `json:"name"`
		Logo        string  `json:"logo"`
		Price       int     `json:"price"`
		MaxMembers  int     `json:"maxMembers"`
		Category    string  `json:"category"`
		Color       string  `json:"color"`
		Description *string `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	service, err := c.store.UpdateService(ctx.Param("id"), func(s *models.OttService) {
		if req.Name != "" {
			s.Name = req.Name
		}
		if req.Logo != "" {
			s.Logo = req.Logo
		}
		if req.Price != 0 {
			s.Price = req.Price
		}
		if req.MaxMembers != 0 {
			s.MaxMembers = req.MaxMembers
		}
		if req.Category != "" {
			s.Category = req.Category
		}
		if req.Color != "" {
			s.Color = req.Color
		}
		if req.Description != nil {
			s.Description = *req.Description
		}
	})
	if err != nil {
		utils.FailErr(ctx, err, "OTT 서비스를 찾을 수 없습니다.")
		return
	}

	c.store.LogActivity(middleware.Identity(ctx).UserID, models.ActionOttUpdate, map[string]any{"serviceId": service.ID})
	utils.SuccessMsg(ctx, "OTT 서비스가 수정되었습니다.", gin.H{"service": service})
}

// DeleteService removes a catalog entry.
func (c *CatalogController) DeleteService(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.store.DeleteService(id); err != nil {
		utils.FailErr(ctx, err, "OTT 서비스를 찾을 수 없습니다.")
		return
	}
	c.store.LogActivity(middleware.Identity(ctx).UserID, models.ActionOttDelete, map[string]any{"serviceId": id})
	utils.SuccessMsg(ctx, "OTT 서비스가 삭제되었습니다.", gin.H{})
}
