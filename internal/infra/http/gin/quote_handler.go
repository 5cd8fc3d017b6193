package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	quoteapp "autorent/internal/app/handlers/quote"
	"autorent/internal/app/queries"
)

type QuoteHandler struct {
	Queries queries.Bus
}

type priceQuoteRequest struct {
	CarID             string    `json:"car_id"`
	Pickup            time.Time `json:"pickup"`
	Dropoff           time.Time `json:"dropoff"`
	PickupLocationID  string    `json:"pickup_location_id"`
	DropoffLocationID string    `json:"dropoff_location_id"`
	ServiceIDs        []string  `json:"service_ids"`
	DiscountCode      string    `json:"discount_code"`
	PaymentMethod     string    `json:"payment_method"`
}

func (h QuoteHandler) Price(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	var req priceQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	query := quoteapp.PriceQuoteQuery{
		CarID:             req.CarID,
		Pickup:            req.Pickup,
		Dropoff:           req.Dropoff,
		PickupLocationID:  req.PickupLocationID,
		DropoffLocationID: req.DropoffLocationID,
		ServiceIDs:        req.ServiceIDs,
		DiscountCode:      req.DiscountCode,
		PaymentMethod:     req.PaymentMethod,
	}
	result, err := queries.Ask[quoteapp.PriceQuoteQuery, *quoteapp.PriceQuoteResult](c.Request.Context(), h.Queries, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ QuoteHTTP = QuoteHandler{}
