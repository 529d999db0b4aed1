// Package dispatch delivers storefront submissions to the warehouse inbox.
package dispatch

import (
	"context"
	"strings"
	"time"

	"github.com/unitedformulas/storefront-api/pkg/config"
	pkgerrors "github.com/unitedformulas/storefront-api/pkg/errors"
	"github.com/unitedformulas/storefront-api/pkg/logger"
	"github.com/unitedformulas/storefront-api/pkg/mail"
	"github.com/unitedformulas/storefront-api/pkg/metrics"
)

// Result reports the outcome of one dispatch. Simulated results carry a
// human-readable message instead of a provider id.
type Result struct {
	MessageID string
	Simulated bool
	Message   string
}

// Service sends the three storefront submission kinds. Every kind follows
// the same contract: missing recipient configuration is a request-level
// error, a missing transport credential downgrades to a logged simulation,
// and transport rejections surface with provider detail.
type Service interface {
	SendPurchaseOrder(ctx context.Context, payload PurchaseOrderPayload) (*Result, error)
	SendInquiry(ctx context.Context, payload InquiryPayload) (*Result, error)
	SendCreditApplication(ctx context.Context, payload CreditApplicationPayload) (*Result, error)
}

type service struct {
	sender  mail.Sender
	cfg     config.MailConfig
	metrics *metrics.DispatchMetrics
	logg    *logger.Logger
}

func NewService(sender mail.Sender, cfg config.MailConfig, mets *metrics.DispatchMetrics, logg *logger.Logger) (Service, error) {
	if sender == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "dispatch service requires a mail sender")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "dispatch service requires a logger")
	}
	return &service{sender: sender, cfg: cfg, metrics: mets, logg: logg}, nil
}

func (s *service) SendPurchaseOrder(ctx context.Context, payload PurchaseOrderPayload) (*Result, error) {
	html, err := renderPurchaseOrder(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rendering purchase order email")
	}
	return s.dispatch(ctx, outbound{
		kind:             KindPurchaseOrder,
		from:             s.cfg.From,
		recipient:        s.cfg.OrdersTo(),
		submitter:        payload.Email,
		subject:          "NEW PO: GREAT FALLS QUEUE - " + firstNonEmpty(payload.BusinessName, fallbackNA),
		html:             html,
		simulatedMessage: "Dev Mode: PO logged to console instead of email.",
		payload:          payload,
	})
}

func (s *service) SendInquiry(ctx context.Context, payload InquiryPayload) (*Result, error) {
	html, err := renderInquiry(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rendering inquiry email")
	}
	return s.dispatch(ctx, outbound{
		kind:             KindInquiry,
		from:             s.cfg.From,
		recipient:        s.cfg.InquiryTo(),
		submitter:        payload.Email,
		subject:          "INQUIRY: STOCK & PRICE CHECK - " + firstNonEmpty(payload.Company, fallbackNA),
		html:             html,
		simulatedMessage: "Dev Mode: Inquiry logged to console instead of email.",
		payload:          payload,
	})
}

func (s *service) SendCreditApplication(ctx context.Context, payload CreditApplicationPayload) (*Result, error) {
	html, err := renderCreditApplication(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rendering credit application email")
	}
	return s.dispatch(ctx, outbound{
		kind:             KindCreditApplication,
		from:             s.cfg.CreditFrom,
		recipient:        s.cfg.CreditTo(),
		submitter:        payload.Email,
		subject:          "CREDIT APPLICATION: " + firstNonEmpty(payload.CompanyName, fallbackNA),
		html:             html,
		simulatedMessage: "Dev Mode: Credit application logged to console instead of email.",
		payload:          payload,
	})
}

// outbound is one fully-rendered email plus its routing inputs.
type outbound struct {
	kind             Kind
	from             string
	recipient        string
	submitter        string
	subject          string
	html             string
	simulatedMessage string
	payload          any
}

func (s *service) dispatch(ctx context.Context, out outbound) (*Result, error) {
	ctx = s.logg.WithDispatchKind(ctx, string(out.kind))

	if strings.TrimSpace(out.recipient) == "" {
		s.logg.Warn(ctx, "dispatch.recipient_missing")
		return nil, pkgerrors.New(pkgerrors.CodeConfig, "warehouse recipient not configured")
	}
	to := buildRecipients(out.recipient, out.submitter)

	if !s.sender.Configured() {
		fields := map[string]any{
			"recipients": to,
			"subject":    out.subject,
			"payload":    out.payload,
		}
		s.logg.Info(s.logg.WithFields(ctx, fields), "dispatch.simulated")
		s.metrics.IncSimulated(string(out.kind))
		return &Result{Simulated: true, Message: out.simulatedMessage}, nil
	}

	start := time.Now()
	id, err := s.sender.Send(ctx, mail.Message{
		From:    out.from,
		To:      to,
		Subject: out.subject,
		HTML:    out.html,
	})
	s.metrics.ObserveDuration(string(out.kind), time.Since(start))
	if err != nil {
		s.metrics.IncFailed(string(out.kind))
		s.logg.Error(ctx, "dispatch.send_failed", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDispatch, err, "sending dispatch email").
			WithDetails(err.Error())
	}

	s.metrics.IncSent(string(out.kind))
	s.logg.Info(s.logg.WithField(ctx, "message_id", id), "dispatch.sent")
	return &Result{MessageID: id}, nil
}

// buildRecipients splits the configured recipient list and appends the
// submitter's address when it is not already present, so the customer
// receives their own copy.
func buildRecipients(configured, submitter string) []string {
	var to []string
	seen := map[string]bool{}
	for _, addr := range strings.Split(configured, ",") {
		addr = strings.TrimSpace(addr)
		if addr == "" || seen[strings.ToLower(addr)] {
			continue
		}
		seen[strings.ToLower(addr)] = true
		to = append(to, addr)
	}
	submitter = strings.TrimSpace(submitter)
	if submitter != "" && !seen[strings.ToLower(submitter)] {
		to = append(to, submitter)
	}
	return to
}
