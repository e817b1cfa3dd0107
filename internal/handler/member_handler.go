package handler

import (
	"errors"
	"net/http"

	"IEDC_Club/internal/model"
	"IEDC_Club/internal/service"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	svc *service.MemberService
}

// RegisterReq 公开注册请求体
type RegisterReq struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required"`
	Semester   string `json:"semester" binding:"required"`
}

func NewMemberHandler(svc *service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// Register 公开注册，成功返回发放的会员号
func (h *MemberHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	m, err := h.svc.Register(req.Name, req.Email, req.Department, req.Semester)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "ok", "membershipId": m.MemberID})
}

// PublicLookup 报名向导用的公开查询，只回会员信息子集
func (h *MemberHandler) PublicLookup(c *gin.Context) {
	memberID := c.Query("membershipId")
	if memberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "membershipId required"})
		return
	}

	m, err := h.svc.Lookup(memberID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"membershipId": m.MemberID,
		"name":         m.Name,
		"department":   m.Department,
		"semester":     m.Semester,
		"status":       m.Status,
	})
}

// List 管理端会员列表
func (h *MemberHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": list})
}

func (h *MemberHandler) Approve(c *gin.Context) {
	h.setStatus(c, model.StatusApproved)
}

func (h *MemberHandler) Reject(c *gin.Context) {
	h.setStatus(c, model.StatusRejected)
}

func (h *MemberHandler) setStatus(c *gin.Context, status string) {
	memberID := c.Param("membershipId")
	if err := h.svc.SetStatus(memberID, status); err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *MemberHandler) Delete(c *gin.Context) {
	memberID := c.Param("membershipId")
	if err := h.svc.Delete(memberID); err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
