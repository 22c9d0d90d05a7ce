package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"marketplace-settlement/internal/models"
	"marketplace-settlement/services/settlement/helpers"
	"marketplace-settlement/utils"

	"github.com/gin-gonic/gin"
)

// QuoteFeeHandler handles GET /fees/quote?amount=&user=
func (h *SettlementHandler) QuoteFeeHandler(c *gin.Context) {
	raw := c.Query("amount")
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, 0, fmt.Errorf("invalid amount %q: %w", raw, err), "invalid amount")
		return
	}
	user := c.Query("user")

	q, err := h.service.QuoteFee(amount, user)
	if err != nil {
		helpers.RespondError(c, "QuoteFeeHandler", err, map[string]any{"amount": amount, "user": user})
		return
	}
	utils.JSONResponse(c, http.StatusOK, q, "fee quoted successfully")
}

// CollectFeeHandler handles POST /fees/collect
func (h *SettlementHandler) CollectFeeHandler(c *gin.Context) {
	var req helpers.CollectFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CollectFeeHandler", err)
		return
	}
	if err := h.service.CollectPlatformFee(req.Amount, req.Currency, req.Payer, req.Admin); err != nil {
		helpers.RespondError(c, "CollectFeeHandler", err, map[string]any{"amount": req.Amount, "payer": req.Payer, "admin": req.Admin})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"amount": req.Amount, "currency": req.Currency.Key()}, "platform fee collected")
	helpers.LogSuccess("CollectFeeHandler", "platform fee collected", map[string]any{
		"amount":   req.Amount,
		"currency": req.Currency.Key(),
	})
}

// WithdrawFeesHandler handles POST /fees/withdraw
func (h *SettlementHandler) WithdrawFeesHandler(c *gin.Context) {
	var req helpers.WithdrawFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "WithdrawFeesHandler", err)
		return
	}
	amount, err := h.service.WithdrawPlatformFees(req.Currency, req.Recipient, req.Admin)
	if err != nil {
		helpers.RespondError(c, "WithdrawFeesHandler", err, map[string]any{"recipient": req.Recipient, "admin": req.Admin})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.WithdrawResponse{Amount: amount}, "platform fees withdrawn")
	helpers.LogSuccess("WithdrawFeesHandler", "platform fees withdrawn", map[string]any{
		"amount":    amount,
		"recipient": req.Recipient,
	})
}

// AccumulatedFeesHandler handles GET /fees/accumulated?contract=&symbol=
func (h *SettlementHandler) AccumulatedFeesHandler(c *gin.Context) {
	currency := models.Asset{Contract: c.Query("contract"), Symbol: c.Query("symbol")}
	amount, err := h.service.AccumulatedFees(currency)
	if err != nil {
		helpers.RespondError(c, "AccumulatedFeesHandler", err, map[string]any{"currency": currency.Key()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.AccumulatedResponse{Currency: currency.Key(), Amount: amount}, "accumulated fees retrieved successfully")
}

// UserVolumeHandler handles GET /fees/volume/:user
func (h *SettlementHandler) UserVolumeHandler(c *gin.Context) {
	user := c.Param("user")
	volume, err := h.service.UserVolume(user)
	if err != nil {
		helpers.RespondError(c, "UserVolumeHandler", err, map[string]any{"user": user})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.VolumeResponse{User: user, Volume: volume}, "user volume retrieved successfully")
}

// FeeStatisticsHandler handles GET /fees/stats
func (h *SettlementHandler) FeeStatisticsHandler(c *gin.Context) {
	stats, err := h.service.FeeStatistics()
	if err != nil {
		helpers.RespondError(c, "FeeStatisticsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, stats, "fee statistics retrieved successfully")
}

// GetFeeConfigHandler handles GET /config/fees
func (h *SettlementHandler) GetFeeConfigHandler(c *gin.Context) {
	cfg, err := h.service.GetFeeConfig()
	if err != nil {
		helpers.RespondError(c, "GetFeeConfigHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, cfg, "fee config retrieved successfully")
}

// UpdateFeeConfigHandler handles PUT /config/fees
func (h *SettlementHandler) UpdateFeeConfigHandler(c *gin.Context) {
	var req helpers.FeeConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateFeeConfigHandler", err)
		return
	}
	if err := h.service.UpdateFeeConfig(req.Config, req.Admin); err != nil {
		helpers.RespondError(c, "UpdateFeeConfigHandler", err, map[string]any{"admin": req.Admin})
		return
	}
	utils.JSONResponse(c, http.StatusOK, req.Config, "fee config updated successfully")
}

// AddVIPHandler handles POST /fees/vip
func (h *SettlementHandler) AddVIPHandler(c *gin.Context) {
	var req helpers.VIPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddVIPHandler", err)
		return
	}
	if err := h.service.AddVIPExemption(req.User, req.Admin); err != nil {
		helpers.RespondError(c, "AddVIPHandler", err, map[string]any{"user": req.User})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"user": req.User}, "vip exemption added")
}

// RemoveVIPHandler handles DELETE /fees/vip/:user?admin=
func (h *SettlementHandler) RemoveVIPHandler(c *gin.Context) {
	user := c.Param("user")
	if err := h.service.RemoveVIPExemption(user, c.Query("admin")); err != nil {
		helpers.RespondError(c, "RemoveVIPHandler", err, map[string]any{"user": user})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"user": user}, "vip exemption removed")
}

// ResetVolumeHandler handles DELETE /fees/volume/:user?admin=
func (h *SettlementHandler) ResetVolumeHandler(c *gin.Context) {
	user := c.Param("user")
	if err := h.service.ResetUserVolume(user, c.Query("admin")); err != nil {
		helpers.RespondError(c, "ResetVolumeHandler", err, map[string]any{"user": user})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"user": user}, "user volume reset")
}
