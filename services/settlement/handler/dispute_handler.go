package handler

import (
	"fmt"
	"net/http"

	dispute "marketplace-settlement/internal/disputeService"
	"marketplace-settlement/internal/models"
	"marketplace-settlement/services/settlement/helpers"
	"marketplace-settlement/utils"

	"github.com/gin-gonic/gin"
)

// InitiateDisputeHandler handles POST /disputes
func (h *SettlementHandler) InitiateDisputeHandler(c *gin.Context) {
	var req helpers.InitiateDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "InitiateDisputeHandler", err)
		return
	}

	id, err := h.service.InitiateDispute(dispute.InitiateParams{
		TransactionID: req.TransactionID,
		AuctionID:     req.AuctionID,
		Initiator:     req.Initiator,
		Reason:        req.Reason,
		EvidenceURI:   req.EvidenceURI,
	})
	if err != nil {
		helpers.RespondError(c, "InitiateDisputeHandler", err, map[string]any{
			"transaction_id": req.TransactionID,
			"initiator":      req.Initiator,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.IDResponse{ID: id}, "dispute initiated successfully")
	helpers.LogSuccess("InitiateDisputeHandler", "dispute initiated successfully", map[string]any{
		"dispute_id": id,
		"initiator":  req.Initiator,
	})
}

// ListDisputesHandler handles GET /disputes, optionally filtered by ?initiator= or ?status=resolved
func (h *SettlementHandler) ListDisputesHandler(c *gin.Context) {
	var (
		disputes []models.Dispute
		err      error
	)
	initiator, status := c.Query("initiator"), c.Query("status")
	switch {
	case initiator != "":
		disputes, err = h.service.DisputesByInitiator(initiator)
	case status == "resolved":
		disputes, err = h.service.ResolvedDisputes()
	case status == "" || status == "active":
		disputes, err = h.service.ActiveDisputes()
	default:
		utils.JSONError(c, http.StatusBadRequest, 0, fmt.Errorf("unknown status %q", status), "invalid status")
		return
	}
	if err != nil {
		helpers.RespondError(c, "ListDisputesHandler", err, map[string]any{"initiator": initiator, "status": status})
		return
	}
	if disputes == nil {
		disputes = []models.Dispute{}
	}
	utils.JSONResponse(c, http.StatusOK, disputes, "disputes retrieved successfully")
}

// GetDisputeHandler handles GET /disputes/:id
func (h *SettlementHandler) GetDisputeHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "GetDisputeHandler", "id")
	if !ok {
		return
	}
	d, err := h.service.GetDispute(id)
	if err != nil {
		helpers.RespondError(c, "GetDisputeHandler", err, map[string]any{"dispute_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, d, "dispute retrieved successfully")
}

// VoteHandler handles POST /disputes/:id/votes
func (h *SettlementHandler) VoteHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "VoteHandler", "id")
	if !ok {
		return
	}
	var req helpers.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VoteHandler", err)
		return
	}

	d, err := h.service.VoteOnDispute(id, req.Arbitrator, req.FavorInitiator)
	if err != nil {
		helpers.RespondError(c, "VoteHandler", err, map[string]any{"dispute_id": id, "arbitrator": req.Arbitrator})
		return
	}

	utils.JSONResponse(c, http.StatusOK, d, "vote recorded successfully")
	helpers.LogSuccess("VoteHandler", "vote recorded successfully", map[string]any{
		"dispute_id": id,
		"arbitrator": req.Arbitrator,
		"resolved":   d.IsResolved(),
	})
}

// SubmitEvidenceHandler handles POST /disputes/:id/evidence
func (h *SettlementHandler) SubmitEvidenceHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "SubmitEvidenceHandler", "id")
	if !ok {
		return
	}
	var req helpers.EvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitEvidenceHandler", err)
		return
	}
	if err := h.service.SubmitEvidence(id, req.Submitter, req.EvidenceURI); err != nil {
		helpers.RespondError(c, "SubmitEvidenceHandler", err, map[string]any{"dispute_id": id, "submitter": req.Submitter})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.IDResponse{ID: id}, "evidence submitted successfully")
}

// ForceResolveHandler handles POST /disputes/:id/force-resolve
func (h *SettlementHandler) ForceResolveHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "ForceResolveHandler", "id")
	if !ok {
		return
	}
	var req helpers.ForceResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ForceResolveHandler", err)
		return
	}
	resolution := models.Resolution(req.Resolution)
	if err := h.service.ForceResolveDispute(id, resolution, req.Admin); err != nil {
		helpers.RespondError(c, "ForceResolveHandler", err, map[string]any{"dispute_id": id, "admin": req.Admin})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"dispute_id": id, "resolution": resolution.String()}, "dispute resolved successfully")
	helpers.LogSuccess("ForceResolveHandler", "dispute resolved successfully", map[string]any{
		"dispute_id": id,
		"resolution": resolution.String(),
	})
}

// ExecuteResolutionHandler handles POST /disputes/:id/execute
func (h *SettlementHandler) ExecuteResolutionHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "ExecuteResolutionHandler", "id")
	if !ok {
		return
	}
	var req helpers.CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ExecuteResolutionHandler", err)
		return
	}
	if err := h.service.ExecuteDisputeResolution(id, req.Caller); err != nil {
		helpers.RespondError(c, "ExecuteResolutionHandler", err, map[string]any{"dispute_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.IDResponse{ID: id}, "dispute resolution executed successfully")
}

// RegisterArbitratorHandler handles POST /arbitrators
func (h *SettlementHandler) RegisterArbitratorHandler(c *gin.Context) {
	var req helpers.RegisterArbitratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterArbitratorHandler", err)
		return
	}
	if err := h.service.RegisterArbitrator(req.Address, req.Reputation); err != nil {
		helpers.RespondError(c, "RegisterArbitratorHandler", err, map[string]any{"address": req.Address})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, gin.H{"address": req.Address}, "arbitrator registered successfully")
}

// ListArbitratorsHandler handles GET /arbitrators
func (h *SettlementHandler) ListArbitratorsHandler(c *gin.Context) {
	arbs, err := h.service.Arbitrators()
	if err != nil {
		helpers.RespondError(c, "ListArbitratorsHandler", err, nil)
		return
	}
	if arbs == nil {
		arbs = []models.Arbitrator{}
	}
	utils.JSONResponse(c, http.StatusOK, arbs, "arbitrators retrieved successfully")
}

// UpdateReputationHandler handles POST /arbitrators/:address/reputation
func (h *SettlementHandler) UpdateReputationHandler(c *gin.Context) {
	addr := c.Param("address")
	var req helpers.ReputationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateReputationHandler", err)
		return
	}
	if err := h.service.UpdateArbitratorReputation(addr, req.Delta, req.Admin); err != nil {
		helpers.RespondError(c, "UpdateReputationHandler", err, map[string]any{"address": addr})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"address": addr, "delta": req.Delta}, "reputation updated successfully")
}

// SetArbitratorActiveHandler handles POST /arbitrators/:address/active
func (h *SettlementHandler) SetArbitratorActiveHandler(c *gin.Context) {
	addr := c.Param("address")
	var req helpers.ArbitratorActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetArbitratorActiveHandler", err)
		return
	}
	if err := h.service.SetArbitratorActive(addr, req.Active, req.Admin); err != nil {
		helpers.RespondError(c, "SetArbitratorActiveHandler", err, map[string]any{"address": addr})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"address": addr, "active": req.Active}, "arbitrator updated successfully")
}

// GetDisputeConfigHandler handles GET /config/disputes
func (h *SettlementHandler) GetDisputeConfigHandler(c *gin.Context) {
	cfg, err := h.service.GetDisputeConfig()
	if err != nil {
		helpers.RespondError(c, "GetDisputeConfigHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, cfg, "dispute config retrieved successfully")
}

// UpdateDisputeConfigHandler handles PUT /config/disputes
func (h *SettlementHandler) UpdateDisputeConfigHandler(c *gin.Context) {
	var req helpers.DisputeConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateDisputeConfigHandler", err)
		return
	}
	if err := h.service.UpdateDisputeConfig(req.Config, req.Admin); err != nil {
		helpers.RespondError(c, "UpdateDisputeConfigHandler", err, map[string]any{"admin": req.Admin})
		return
	}
	utils.JSONResponse(c, http.StatusOK, req.Config, "dispute config updated successfully")
}
