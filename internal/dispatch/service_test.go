package dispatch

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/unitedformulas/storefront-api/pkg/config"
	pkgerrors "github.com/unitedformulas/storefront-api/pkg/errors"
	"github.com/unitedformulas/storefront-api/pkg/logger"
	"github.com/unitedformulas/storefront-api/pkg/mail"
)

type stubSender struct {
	configured bool
	id         string
	err        error
	calls      int
	lastMsg    mail.Message
}

func (s *stubSender) Configured() bool {
	return s.configured
}

func (s *stubSender) Send(ctx context.Context, msg mail.Message) (string, error) {
	s.calls++
	s.lastMsg = msg
	if s.err != nil {
		return "", s.err
	}
	return s.id, nil
}

func newTestService(t *testing.T, sender mail.Sender, cfg config.MailConfig) Service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.ErrorLevel, Output: io.Discard})
	svc, err := NewService(sender, cfg, nil, logg)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func poPayload() PurchaseOrderPayload {
	return PurchaseOrderPayload{
		FullName:     "Dana Whitfield",
		PhoneNumber:  "406-555-0188",
		Email:        "dana@buyer.example",
		BusinessName: "Big Sky Brewing",
		Items: []OrderItem{
			{ProductName: "Citric Acid", VariantName: "50 lb Bag", SKU: "CA-50", Quantity: 2, Price: "$84.00", Total: "$168.00"},
		},
		GrandTotal: "$168.00",
	}
}

func TestSendPurchaseOrderMissingRecipient(t *testing.T) {
	sender := &stubSender{configured: true, id: "msg_1"}
	svc := newTestService(t, sender, config.MailConfig{})

	_, err := svc.SendPurchaseOrder(context.Background(), poPayload())
	if err == nil {
		t.Fatal("expected error when no recipient is configured")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConfig {
		t.Fatalf("expected CONFIG_ERROR, got %v", err)
	}
	if sender.calls != 0 {
		t.Fatalf("sender should not be invoked, got %d calls", sender.calls)
	}
}

func TestSendPurchaseOrderSimulatedWithoutCredential(t *testing.T) {
	sender := &stubSender{configured: false}
	svc := newTestService(t, sender, config.MailConfig{WarehouseEmail: "orders@warehouse.example"})

	result, err := svc.SendPurchaseOrder(context.Background(), poPayload())
	if err != nil {
		t.Fatalf("SendPurchaseOrder: %v", err)
	}
	if !result.Simulated {
		t.Fatal("expected simulated result")
	}
	if result.Message != "Dev Mode: PO logged to console instead of email." {
		t.Fatalf("unexpected simulated message: %q", result.Message)
	}
	if sender.calls != 0 {
		t.Fatalf("sender should not be invoked in simulated mode, got %d calls", sender.calls)
	}
}

func TestSendPurchaseOrderDelivers(t *testing.T) {
	sender := &stubSender{configured: true, id: "msg_42"}
	svc := newTestService(t, sender, config.MailConfig{
		From:           "United Formulas <onboarding@resend.dev>",
		WarehouseEmail: "orders@warehouse.example",
	})

	result, err := svc.SendPurchaseOrder(context.Background(), poPayload())
	if err != nil {
		t.Fatalf("SendPurchaseOrder: %v", err)
	}
	if result.Simulated || result.MessageID != "msg_42" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if sender.lastMsg.Subject != "NEW PO: GREAT FALLS QUEUE - Big Sky Brewing" {
		t.Fatalf("unexpected subject: %q", sender.lastMsg.Subject)
	}
	if len(sender.lastMsg.To) != 2 || sender.lastMsg.To[0] != "orders@warehouse.example" || sender.lastMsg.To[1] != "dana@buyer.example" {
		t.Fatalf("unexpected recipients: %v", sender.lastMsg.To)
	}
	for _, want := range []string{"Citric Acid (50 lb Bag)", "$168.00", "Dana Whitfield", "406-555-0188"} {
		if !strings.Contains(sender.lastMsg.HTML, want) {
			t.Fatalf("email body missing %q", want)
		}
	}
}

func TestSendInquiryTransportFailure(t *testing.T) {
	sender := &stubSender{configured: true, err: errors.New("resend: 422 invalid to address")}
	svc := newTestService(t, sender, config.MailConfig{WarehouseEmail: "orders@warehouse.example"})

	_, err := svc.SendInquiry(context.Background(), InquiryPayload{
		FullName: "Ray Osei",
		Company:  "Osei Labs",
		Email:    "ray@oseilabs.example",
	})
	if err == nil {
		t.Fatal("expected transport failure to surface")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDispatch {
		t.Fatalf("expected DISPATCH_FAILED, got %v", err)
	}
	details, ok := typed.Details().(string)
	if !ok || !strings.Contains(details, "invalid to address") {
		t.Fatalf("expected provider detail, got %v", typed.Details())
	}
}

func TestSendCreditApplicationUsesCreditRouting(t *testing.T) {
	sender := &stubSender{configured: true, id: "msg_9"}
	svc := newTestService(t, sender, config.MailConfig{
		From:            "United Formulas <onboarding@resend.dev>",
		CreditFrom:      "UF Credit Dept <notifications@unitedformulas.com>",
		WarehouseEmail:  "orders@warehouse.example",
		CreditRecipient: "credit@unitedformulas.example, ap@unitedformulas.example",
	})

	payload := CreditApplicationPayload{
		CompanyName: "Granite Peak Paints",
		Email:       "owner@granitepeak.example",
		Directors:   []Director{{Name: "J. Moss", Title: "President", Address: "12 Main St", SS: "on file"}},
		References:  []Reference{{Name: "Valley Supply", Address: "88 Dock Rd", Email: "ar@valleysupply.example", Contact: "L. Tran"}},
		BankName:    "First Interstate",
	}
	result, err := svc.SendCreditApplication(context.Background(), payload)
	if err != nil {
		t.Fatalf("SendCreditApplication: %v", err)
	}
	if result.MessageID != "msg_9" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if sender.lastMsg.From != "UF Credit Dept <notifications@unitedformulas.com>" {
		t.Fatalf("unexpected from: %q", sender.lastMsg.From)
	}
	want := []string{"credit@unitedformulas.example", "ap@unitedformulas.example", "owner@granitepeak.example"}
	if len(sender.lastMsg.To) != len(want) {
		t.Fatalf("unexpected recipients: %v", sender.lastMsg.To)
	}
	for i, addr := range want {
		if sender.lastMsg.To[i] != addr {
			t.Fatalf("recipient %d: got %q want %q", i, sender.lastMsg.To[i], addr)
		}
	}
	if sender.lastMsg.Subject != "CREDIT APPLICATION: Granite Peak Paints" {
		t.Fatalf("unexpected subject: %q", sender.lastMsg.Subject)
	}
	for _, wantBody := range []string{"Granite Peak Paints", "J. Moss", "Valley Supply", "First Interstate", "UF CREDIT APPLICATION SUBMISSION"} {
		if !strings.Contains(sender.lastMsg.HTML, wantBody) {
			t.Fatalf("email body missing %q", wantBody)
		}
	}
}

func TestBuildRecipients(t *testing.T) {
	cases := []struct {
		name       string
		configured string
		submitter  string
		want       []string
	}{
		{"single", "a@x.example", "", []string{"a@x.example"}},
		{"comma list trims", " a@x.example , b@x.example ", "", []string{"a@x.example", "b@x.example"}},
		{"submitter appended", "a@x.example", "c@y.example", []string{"a@x.example", "c@y.example"}},
		{"submitter already present", "a@x.example", "A@X.example", []string{"a@x.example"}},
		{"duplicate configured entries", "a@x.example,a@x.example", "", []string{"a@x.example"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := buildRecipients(tc.configured, tc.submitter)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v want %v", got, tc.want)
				}
			}
		})
	}
}
