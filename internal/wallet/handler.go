package wallet

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes wallet HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type amountRequest struct {
	Amount *int64 `json:"amount"`
}

type walletResponse struct {
	ID        string `json:"id"`
	Balance   int64  `json:"balance"`
	Strict    bool   `json:"strict_amounts"`
	CreatedAt string `json:"created_at"`
}

// Create provisions an empty wallet.
func (h *Handler) Create(c *fiber.Ctx) error {
	record, err := h.service.Create(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(walletResponse{
		ID:        record.ID,
		Balance:   record.Wallet.Balance(),
		Strict:    record.Wallet.Strict(),
		CreatedAt: record.CreatedAt.Format(time.RFC3339Nano),
	})
}

// Balance returns the wallet balance.
func (h *Handler) Balance(c *fiber.Ctx) error {
	balance, err := h.service.Balance(c.UserContext(), c.Params("walletId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(http.StatusOK).JSON(balanceBody(balance))
}

// Deposit credits the wallet with the requested amount.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	amount, err := parseAmount(c)
	if err != nil {
		return err
	}
	balance, err := h.service.Deposit(c.UserContext(), c.Params("walletId"), amount)
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(http.StatusOK).JSON(balanceBody(balance))
}

// Withdraw debits the wallet with the requested amount.
func (h *Handler) Withdraw(c *fiber.Ctx) error {
	amount, err := parseAmount(c)
	if err != nil {
		return err
	}
	balance, err := h.service.Withdraw(c.UserContext(), c.Params("walletId"), amount)
	if err != nil {
		return toHTTPError(err)
	}
	return c.Status(http.StatusOK).JSON(balanceBody(balance))
}

func parseAmount(c *fiber.Ctx) (int64, error) {
	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Amount == nil {
		return 0, fiber.NewError(http.StatusBadRequest, "amount is required")
	}
	return *req.Amount, nil
}

func balanceBody(b Balance) fiber.Map {
	return fiber.Map{
		"wallet_id": b.WalletID,
		"balance":   b.Amount,
		"timestamp": b.AsOf.Format(time.RFC3339Nano),
	}
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, ErrWalletNotFound):
		return fiber.NewError(http.StatusNotFound, "wallet not found")
	case errors.Is(err, ErrNotEnoughFunds):
		return fiber.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidAmount):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}
