package controllers

import (
	"strconv"
	"time"

	"github.com/Govind-619/CorpSite/services"
	"github.com/Govind-619/CorpSite/utils"

	"github.com/gin-gonic/gin"
)

// SimulateController signs fake checkout results so the verify flow can be
// exercised without the gateway widget. Only mounted outside production.
type SimulateController struct {
	signer *services.SignatureVerifier
}

func NewSimulateController(signer *services.SignatureVerifier) *SimulateController {
	return &SimulateController{signer: signer}
}

// GET /api/payment/simulate?order_id=
func (sc *SimulateController) SimulatePayment(c *gin.Context) {
	orderID := c.Query("order_id")
	if orderID == "" {
		utils.BadRequest(c, "Order ID is required", nil)
		return
	}

	paymentID := c.Query("payment_id")
	if paymentID == "" {
		paymentID = "pay_test_" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	utils.LogDebug("Simulating payment %s for order %s", paymentID, orderID)

	utils.Success(c, "Payment simulation completed successfully", gin.H{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
		"razorpay_signature":  sc.signer.PaymentSignature(orderID, paymentID),
	})
}
