package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"yogaflow/internal/domain/quota"
	"yogaflow/internal/pkg/config"
	"yogaflow/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Webhook bodies stay small; this guards against oversized payloads only.
const maxWebhookBodyBytes = 65536

type BillingHandler struct {
	billingCommands commands.BillingCommands
	webhookSecret   string
}

func NewBillingHandler(billingCommands commands.BillingCommands, cfg config.StripeConfig) *BillingHandler {
	return &BillingHandler{
		billingCommands: billingCommands,
		webhookSecret:   cfg.WebhookSecret,
	}
}

// @Summary Billing webhook
// @Description Receive billing provider events that drive the quota ledger
// @Tags billing
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /billing/webhook [post]
func (h *BillingHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		slog.Warn("webhook signature verification failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	if err := h.applyEvent(c, event); err != nil {
		// A datastore failure must make the provider redeliver.
		slog.Error("failed to apply billing event", "event_type", event.Type, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": "true"})
}

func (h *BillingHandler) applyEvent(c *gin.Context, event stripe.Event) error {
	ctx := c.Request.Context()

	switch event.Type {
	case "customer.subscription.created", "customer.subscription.updated":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return err
		}
		if sub.Customer == nil {
			return nil
		}
		return h.billingCommands.ApplySubscriptionStatus(ctx, sub.Customer.ID, mapSubscriptionStatus(sub.Status))

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return err
		}
		if sub.Customer == nil {
			return nil
		}
		return h.billingCommands.ApplySubscriptionCanceled(ctx, sub.Customer.ID)

	case "invoice.payment_succeeded":
		var inv stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return err
		}
		if inv.Customer == nil {
			return nil
		}
		return h.billingCommands.ApplyCycleRenewed(ctx, inv.Customer.ID,
			time.Unix(inv.PeriodStart, 0).UTC(), time.Unix(inv.PeriodEnd, 0).UTC())

	case "setup_intent.succeeded":
		var si stripe.SetupIntent
		if err := json.Unmarshal(event.Data.Raw, &si); err != nil {
			return err
		}
		if si.Customer == nil {
			return nil
		}
		studentID, err := uuid.Parse(si.Metadata["student_id"])
		if err != nil {
			slog.Warn("setup intent without usable student metadata, dropped", "setup_intent", si.ID)
			return nil
		}
		return h.billingCommands.RegisterPaymentMethod(ctx, studentID, si.Customer.ID)

	default:
		slog.Debug("ignoring billing event", "event_type", event.Type)
		return nil
	}
}

func mapSubscriptionStatus(s stripe.SubscriptionStatus) quota.Status {
	switch s {
	case stripe.SubscriptionStatusActive:
		return quota.StatusActive
	case stripe.SubscriptionStatusTrialing:
		return quota.StatusTrial
	case stripe.SubscriptionStatusPastDue, stripe.SubscriptionStatusUnpaid:
		return quota.StatusPastDue
	case stripe.SubscriptionStatusCanceled:
		return quota.StatusCanceled
	default:
		return quota.StatusIncomplete
	}
}
