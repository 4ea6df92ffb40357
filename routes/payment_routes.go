package routes

import (
	"context"
	"strings"

	"github.com/Govind-619/CorpSite/controllers"
	"github.com/Govind-619/CorpSite/middleware"
	"github.com/Govind-619/CorpSite/services"
	"github.com/Govind-619/CorpSite/utils"

	"github.com/gin-gonic/gin"
)

func initPaymentRoutes(api *gin.RouterGroup, deps Dependencies, contents *contentServices) {
	signer := services.NewSignatureVerifier(deps.Config.RazorpayKeySecret, deps.Config.RazorpayWebhookSecret)
	payments := services.NewPaymentService(services.NewOrderStore(deps.DB), deps.Gateway, signer)

	paymentController := controllers.NewPaymentController(payments, receiptIssuer(contents))
	webhookController := controllers.NewWebhookController(services.NewWebhookService(deps.DB), signer)

	payment := api.Group("/payment")
	{
		payment.POST("/create-order", middleware.RateLimit(deps.Limiter, "create-order"), paymentController.CreateOrder)
		payment.POST("/verify", middleware.RateLimit(deps.Limiter, "verify"), paymentController.Verify)
		payment.GET("/status/:orderId", paymentController.Status)
		payment.POST("/webhook", webhookController.Receive)

		payment.GET("/orders", paymentController.ListOrders)
		payment.GET("/receipt/:orderId", paymentController.Receipt)
		payment.GET("/export", paymentController.Export)
		payment.GET("/test", paymentController.RouteInfo)

		if !deps.Config.IsProduction() {
			payment.GET("/simulate", controllers.NewSimulateController(signer).SimulatePayment)
		}
	}
}

// receiptIssuer prints the stored company profile on receipts
func receiptIssuer(contents *contentServices) func(ctx context.Context) services.ReceiptIssuer {
	return func(ctx context.Context) services.ReceiptIssuer {
		issuer := services.ReceiptIssuer{Name: "CorpSite"}

		companies, _, err := contents.company.List(ctx, services.ListQuery{Limit: 1})
		if err != nil {
			utils.LogError("Failed to load company profile for receipt: %v", err)
			return issuer
		}
		if len(companies) == 0 {
			return issuer
		}

		company := companies[0]
		issuer.Name = company.Name
		var address []string
		for _, part := range []string{company.Address.Street, company.Address.City, company.Address.State, company.Address.ZipCode, company.Address.Country} {
			if part != "" {
				address = append(address, part)
			}
		}
		issuer.Address = strings.Join(address, ", ")
		issuer.Contact = strings.TrimSpace(company.Contact.Email + "  " + company.Contact.Phone)
		return issuer
	}
}
