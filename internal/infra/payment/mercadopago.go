package payment

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/classiccuts/booking-api/internal/models"
)

// Deposit é o sinal opcional cobrado na reserva: metade do preço do serviço.
type Deposit struct {
	PreferenceID string  `json:"preference_id"`
	InitPoint    string  `json:"init_point"`
	Amount       float64 `json:"amount"`
}

type MercadoPagoClient struct {
	prefs preference.Client
}

func NewMercadoPagoClient(accessToken string) (*MercadoPagoClient, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPagoClient{
		prefs: preference.NewClient(cfg),
	}, nil
}

// CreateDeposit cria a preferência de pagamento do sinal de um agendamento.
func (c *MercadoPagoClient) CreateDeposit(
	ctx context.Context,
	ap *models.Appointment,
	service *models.Service,
) (*Deposit, error) {

	amount := service.Price / 2

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       fmt.Sprintf("Sinal - %s (%s %s)", service.Name, ap.Date, ap.Time),
				Description: "Sinal de reserva Classic Cuts",
				Quantity:    1,
				UnitPrice:   amount,
			},
		},
		ExternalReference: fmt.Sprintf("appointment-%d", ap.ID),
	}

	resp, err := c.prefs.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Deposit{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
		Amount:       amount,
	}, nil
}
