package handler

import (
	"errors"
	"net/http"
	"strconv"

	"IEDC_Club/internal/service"

	"github.com/gin-gonic/gin"
)

type SubCommunityHandler struct {
	svc *service.SubCommunityService
}

type CreateSubCommunityReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Lead        string `json:"lead"`
}

type AddTeamMemberReq struct {
	Name         string `json:"name" binding:"required"`
	Role         string `json:"role" binding:"required"`
	SubCommunity string `json:"subCommunity"`
	Year         string `json:"year" binding:"required"`
}

func NewSubCommunityHandler(svc *service.SubCommunityService) *SubCommunityHandler {
	return &SubCommunityHandler{svc: svc}
}

// List 公开的子社区列表
func (h *SubCommunityHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"communities": list})
}

// Team 公开的团队名单
func (h *SubCommunityHandler) Team(c *gin.Context) {
	list, err := h.svc.ListTeam()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": list})
}

func (h *SubCommunityHandler) Create(c *gin.Context) {
	var req CreateSubCommunityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	sc, err := h.svc.Create(req.Name, req.Description, req.Lead)
	if err != nil {
		if errors.Is(err, service.ErrSubCommunityExists) {
			c.JSON(http.StatusConflict, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "ok", "community": sc})
}

func (h *SubCommunityHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("name")); err != nil {
		if errors.Is(err, service.ErrSubCommunityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "sub-community not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *SubCommunityHandler) AddTeamMember(c *gin.Context) {
	var req AddTeamMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	m, err := h.svc.AddTeamMember(req.Name, req.Role, req.SubCommunity, req.Year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "ok", "member": m})
}

func (h *SubCommunityHandler) RemoveTeamMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}

	if err := h.svc.RemoveTeamMember(id); err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "team member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
