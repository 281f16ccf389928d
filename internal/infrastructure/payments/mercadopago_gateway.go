package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/mperror"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing mercado pago access token")
var ErrMercadoPagoRejected = errors.New("mercado pago rejected the request")

const searchPageSize = 50

// maxSearchPages bounds pagination for one reference.
const maxSearchPages = 10

// MercadoPagoOptions configures the gateway adapter. Zero values are valid.
type MercadoPagoOptions struct {
	MockMode            bool
	HTTPClient          *http.Client
	NotificationURL     string
	BackURL             string
	StatementDescriptor string
}

type mercadoPagoClients struct {
	preference preference.Client
	payment    payment.Client
}

// MercadoPagoGateway registers checkouts as Mercado Pago preferences and looks
// transactions up by external_reference. Credentials come per call, so clients
// are cached per access token.
type MercadoPagoGateway struct {
	opts       MercadoPagoOptions
	httpClient *http.Client

	mu      sync.Mutex
	clients map[string]*mercadoPagoClients
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts MercadoPagoOptions) *MercadoPagoGateway {
	if !opts.MockMode && isPaymentGatewayMockEnabled() {
		opts.MockMode = true
	}
	if opts.MockMode {
		log.Printf("[payment][gateway] mock mode enabled")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	return &MercadoPagoGateway{
		opts:       opts,
		httpClient: httpClient,
		clients:    map[string]*mercadoPagoClients{},
	}
}

func (g *MercadoPagoGateway) RegisterPayment(ctx context.Context, credentials entities.Credentials, request entities.PaymentRequest) (string, error) {
	if g.opts.MockMode {
		url := "https://sandbox.mercadopago.com.br/checkout/v1/redirect?pref_id=mock-" + request.Reference
		log.Printf("[payment][gateway] mock register success reference=%s", request.Reference)
		return url, nil
	}

	clients, err := g.clientsFor(credentials)
	if err != nil {
		return "", err
	}

	log.Printf("[payment][gateway] register start reference=%s items=%d account=%s", request.Reference, len(request.Items), credentials.Email)
	resp, err := clients.preference.Create(ctx, g.toPreferenceRequest(request))
	if err != nil {
		log.Printf("[payment][gateway] sdk preference create failed reference=%s err=%v", request.Reference, err)
		return "", wrapSDKError(err)
	}

	log.Printf("[payment][gateway] register success reference=%s preference_id=%s", request.Reference, resp.ID)
	if resp.InitPoint != "" {
		return resp.InitPoint, nil
	}
	return resp.SandboxInitPoint, nil
}

func (g *MercadoPagoGateway) SearchTransactionsByReference(ctx context.Context, credentials entities.Credentials, reference string) ([]entities.TransactionSummary, error) {
	if g.opts.MockMode {
		now := time.Now().UTC()
		log.Printf("[payment][gateway] mock search success reference=%s", reference)
		return []entities.TransactionSummary{{
			Code:          "mock-" + reference,
			Reference:     reference,
			Status:        entities.TransactionStatusPaid,
			GrossAmount:   decimal.Zero,
			Date:          now,
			LastEventDate: now,
		}}, nil
	}

	clients, err := g.clientsFor(credentials)
	if err != nil {
		return nil, err
	}

	var out []entities.TransactionSummary
	for page := 0; page < maxSearchPages; page++ {
		resp, err := clients.payment.Search(ctx, payment.SearchRequest{
			Limit:  searchPageSize,
			Offset: page * searchPageSize,
			Filters: map[string]string{
				"external_reference": reference,
				"sort":               "date_created",
				"criteria":           "desc",
			},
		})
		if err != nil {
			log.Printf("[payment][gateway] sdk payment search failed reference=%s err=%v", reference, err)
			return nil, wrapSDKError(err)
		}

		for _, p := range resp.Results {
			out = append(out, toTransactionSummary(p))
		}
		if len(resp.Results) == 0 || resp.Paging.Offset+len(resp.Results) >= resp.Paging.Total {
			break
		}
	}

	// Newest attempt first, whatever order the pages arrived in.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })

	log.Printf("[payment][gateway] search success reference=%s transactions=%d", reference, len(out))
	return out, nil
}

func (g *MercadoPagoGateway) clientsFor(credentials entities.Credentials) (*mercadoPagoClients, error) {
	token := strings.TrimSpace(credentials.Token)
	if token == "" {
		log.Printf("[payment][gateway] missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if c, ok := g.clients[token]; ok {
		return c, nil
	}

	cfg, err := config.New(token, config.WithHTTPClient(g.httpClient))
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	c := &mercadoPagoClients{
		preference: preference.NewClient(cfg),
		payment:    payment.NewClient(cfg),
	}
	g.clients[token] = c
	log.Printf("[payment][gateway] Mercado Pago client initialized account=%s", credentials.Email)
	return c, nil
}

func (g *MercadoPagoGateway) toPreferenceRequest(r entities.PaymentRequest) preference.Request {
	items := make([]preference.ItemRequest, 0, len(r.Items))
	weights := map[string]any{}
	for _, it := range r.Items {
		items = append(items, preference.ItemRequest{
			ID:          it.ID,
			Title:       it.Description,
			Description: it.Description,
			CurrencyID:  r.Currency,
			UnitPrice:   it.Amount.InexactFloat64(),
			Quantity:    it.Quantity,
		})
		if it.Weight != nil {
			weights[it.ID] = *it.Weight
		}
	}

	req := preference.Request{
		Items:               items,
		ExternalReference:   r.Reference,
		NotificationURL:     g.opts.NotificationURL,
		StatementDescriptor: g.opts.StatementDescriptor,
		Payer: &preference.PayerRequest{
			Name:  r.Sender.Name,
			Email: r.Sender.Email,
		},
		Shipments: &preference.ShipmentsRequest{
			Mode: shipmentMode(r.Shipping),
			Cost: r.Shipping.Cost.InexactFloat64(),
		},
	}
	if len(weights) > 0 {
		req.Metadata = map[string]any{"item_weights": weights}
	}
	if a := r.Shipping.Address; a != (entities.ShippingAddress{}) {
		req.Shipments.ReceiverAddress = &preference.ReceiverAddressRequest{
			ZipCode:      a.PostalCode,
			StreetName:   a.Street,
			StreetNumber: a.Number,
			Apartment:    a.Complement,
			CityName:     a.City,
			StateName:    a.State,
			CountryName:  a.Country,
		}
	}
	if g.opts.BackURL != "" {
		req.BackURLs = &preference.BackURLsRequest{
			Success: g.opts.BackURL,
			Pending: g.opts.BackURL,
			Failure: g.opts.BackURL,
		}
	}
	return req
}

// shipmentMode picks "custom" whenever a cost is charged, since Mercado Pago
// ignores the cost in any other mode.
func shipmentMode(s entities.Shipping) string {
	switch {
	case s.Type == entities.ShippingTypePAC, s.Type == entities.ShippingTypeSEDEX:
		return "custom"
	case s.Cost.IsPositive():
		return "custom"
	default:
		return "not_specified"
	}
}

func toTransactionSummary(p payment.Response) entities.TransactionSummary {
	return entities.TransactionSummary{
		Code:          strconv.Itoa(p.ID),
		Reference:     p.ExternalReference,
		Status:        mapPaymentStatus(p.Status, p.MoneyReleaseStatus),
		GrossAmount:   decimal.NewFromFloat(p.TransactionAmount),
		Date:          p.DateCreated,
		LastEventDate: p.DateLastUpdated,
	}
}

// mapPaymentStatus translates Mercado Pago payment states to transaction statuses.
// An approved payment whose money was released counts as available.
func mapPaymentStatus(status, moneyReleaseStatus string) entities.TransactionStatus {
	switch status {
	case "approved":
		if moneyReleaseStatus == "released" {
			return entities.TransactionStatusAvailable
		}
		return entities.TransactionStatusPaid
	case "pending":
		return entities.TransactionStatusWaitingPayment
	case "in_process", "authorized":
		return entities.TransactionStatusInAnalysis
	case "in_mediation":
		return entities.TransactionStatusInDispute
	case "refunded", "charged_back":
		return entities.TransactionStatusReturned
	case "cancelled", "rejected":
		return entities.TransactionStatusCancelled
	default:
		return entities.TransactionStatusUnknown
	}
}

func wrapSDKError(err error) error {
	var respErr *mperror.ResponseError
	if errors.As(err, &respErr) {
		return fmt.Errorf("%w: status=%d message=%s", ErrMercadoPagoRejected, respErr.StatusCode, respErr.Message)
	}
	return err
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
