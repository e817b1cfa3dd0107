package handler

import (
	"errors"
	"net/http"

	"IEDC_Club/internal/middleware"
	"IEDC_Club/internal/service"

	"github.com/gin-gonic/gin"
)

type ExecomHandler struct {
	svc *service.ExecomService
}

// ExecomSubmitReq 执委会申请提交请求体。
// 三项声明必填（q2 只在 q1=Yes 时有意义，向导会跳过，服务端不强制）
type ExecomSubmitReq struct {
	MembershipID       string `json:"membershipId" binding:"required"`
	HoldsOtherPosition string `json:"q1" binding:"required"`
	WillingToStepDown  string `json:"q2"`
	AgreesRemoval      string `json:"q3" binding:"required"`
	Motivation         string `json:"motivation" binding:"required"`
	Role               string `json:"role" binding:"required"`
	Skills             string `json:"skills" binding:"required"`
	Experience         string `json:"experience" binding:"required"`
	Area               string `json:"area" binding:"required"`
	Time               string `json:"time" binding:"required"`
	Vision             string `json:"vision" binding:"required"`
}

func NewExecomHandler(svc *service.ExecomService) *ExecomHandler {
	return &ExecomHandler{svc: svc}
}

// Check 公开查重：该会员号是否已提交
func (h *ExecomHandler) Check(c *gin.Context) {
	memberID := c.Query("membershipId")
	if memberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "membershipId required"})
		return
	}

	exists, err := h.svc.CheckExists(memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "check failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// Submit 公开提交，服务端完整复核资格
func (h *ExecomHandler) Submit(c *gin.Context) {
	var req ExecomSubmitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	err := h.svc.Submit(service.SubmitInput{
		MemberID:           req.MembershipID,
		HoldsOtherPosition: req.HoldsOtherPosition,
		WillingToStepDown:  req.WillingToStepDown,
		AgreesRemoval:      req.AgreesRemoval,
		Motivation:         req.Motivation,
		Role:               req.Role,
		Skills:             req.Skills,
		Experience:         req.Experience,
		Area:               req.Area,
		TimeCommitment:     req.Time,
		Vision:             req.Vision,
	})
	if err != nil {
		var elig *service.EligibilityError
		switch {
		case errors.Is(err, service.ErrCallClosed):
			c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
		case errors.Is(err, service.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "member not found"})
		case errors.Is(err, service.ErrAlreadySubmitted):
			c.JSON(http.StatusConflict, gin.H{"msg": err.Error()})
		case errors.As(err, &elig):
			c.JSON(http.StatusBadRequest, gin.H{"msg": elig.Reason})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "submit failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "ok"})
}

// Responses 管理端富化列表，筛选留给前端
func (h *ExecomHandler) Responses(c *gin.Context) {
	list, err := h.svc.ListEnriched()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"responses": list})
}

// Export CSV 导出，列顺序与前端表格一致
func (h *ExecomHandler) Export(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="execom-call-responses.csv"`)
	if err := h.svc.ExportCSV(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "export failed"})
		return
	}
}

func (h *ExecomHandler) Approve(c *gin.Context) {
	h.moderate(c, h.svc.Approve)
}

func (h *ExecomHandler) Reject(c *gin.Context) {
	h.moderate(c, h.svc.Reject)
}

func (h *ExecomHandler) Delete(c *gin.Context) {
	h.moderate(c, h.svc.Delete)
}

func (h *ExecomHandler) moderate(c *gin.Context, op func(string, uint64) error) {
	memberID := c.Param("membershipId")
	reviewerID, _ := c.Get(middleware.ContextUserIDKey)
	uid, _ := reviewerID.(uint64)

	if err := op(memberID, uid); err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "moderation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
