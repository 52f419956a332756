package http

import (
	"net/http"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-inventory-api/internal/application/attachment"
	"github.com/go-inventory-api/internal/application/auth"
	"github.com/go-inventory-api/internal/application/resource"
	"github.com/go-inventory-api/internal/config"
	"github.com/go-inventory-api/internal/domain"
	"github.com/go-inventory-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/go-inventory-api/internal/infrastructure/jwt"
	s3infra "github.com/go-inventory-api/internal/infrastructure/s3"
	"github.com/go-inventory-api/internal/infrastructure/smtp"
	"github.com/go-inventory-api/internal/infrastructure/sns"
	"github.com/go-inventory-api/internal/otp"
	"github.com/go-inventory-api/internal/transport/http/handler"
	appmiddleware "github.com/go-inventory-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Dynamo         *dynamodb.Client
	AccountRepo    *dynamo.AccountRepo
	AttachmentRepo *dynamo.AttachmentRepo
	S3Store        *s3infra.Store
	Mailer         smtp.Mailer
	SMSSender      sns.SMSSender
	JWTProvider    *jwtinfra.Provider
	OTPStore       otp.Store
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	authSvc := auth.NewService(auth.ServiceDeps{
		Accounts:           deps.AccountRepo,
		Tokens:             deps.JWTProvider,
		OTPs:               deps.OTPStore,
		Mailer:             deps.Mailer,
		SMS:                deps.SMSSender,
		AccessTTL:          cfg.AccessTokenTTL,
		RefreshedAccessTTL: cfg.RefreshedAccessTTL,
		RefreshTTL:         cfg.RefreshTokenTTL,
		OTPTTL:             cfg.OTPTTL,
	})
	attachSvc := attachment.NewService(deps.S3Store, deps.AttachmentRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	attachH := handler.NewAttachmentHandler(attachSvc)

	// ── Public auth routes ───────────────────────────────────────────────
	r.Get("/health-check/{action}", healthH.Ping)
	r.With(sensitiveRL.Limit).Post("/register", authH.Register)
	r.With(sensitiveRL.Limit).Post("/login", authH.Login)
	r.Post("/refresh-token", authH.Refresh)
	r.With(sensitiveRL.Limit).Post("/verify-otp", authH.VerifyOTP)

	// Entity CRUD is served identically under both API versions.
	for _, prefix := range []string{"/api/v1", "/api/v2"} {
		r.Route(prefix, func(r chi.Router) {
			mountEntities(r, authMw, deps.Dynamo, cfg.DynamoTables)
		})
	}

	r.Route("/api/v1/attachments", func(r chi.Router) {
		r.Use(authMw)
		r.Post("/", attachH.Upload)
		r.Post("/base64", attachH.UploadBase64)
		r.Get("/{id}", attachH.Download)
		r.Delete("/{id}", attachH.Delete)
	})

	return r
}

func mountEntities(r chi.Router, authMw func(http.Handler) http.Handler, client *dynamodb.Client, tables config.DynamoTables) {
	mountResource(r, authMw, "inventory", dynamo.NewResourceRepo[domain.Inventory](client, tables.Inventory), domain.NewInventory)
	mountResource(r, authMw, "product", dynamo.NewResourceRepo[domain.Product](client, tables.Products), domain.NewProduct)
	mountResource(r, authMw, "category", dynamo.NewResourceRepo[domain.Category](client, tables.Categories), domain.NewCategory)
	mountResource(r, authMw, "order", dynamo.NewResourceRepo[domain.Order](client, tables.Orders), domain.NewOrder)
	mountResource(r, authMw, "orderdetail", dynamo.NewResourceRepo[domain.OrderDetail](client, tables.OrderDetails), domain.NewOrderDetail)
	mountResource(r, authMw, "payment", dynamo.NewResourceRepo[domain.Payment](client, tables.Payments), domain.NewPayment)
	mountResource(r, authMw, "permission", dynamo.NewResourceRepo[domain.Permission](client, tables.Permissions), domain.NewPermission)
	mountResource(r, authMw, "role", dynamo.NewResourceRepo[domain.Role](client, tables.Roles), domain.NewRole)
	mountResource(r, authMw, "shipment", dynamo.NewResourceRepo[domain.Shipment](client, tables.Shipments), domain.NewShipment)
	mountResource(r, authMw, "supplier", dynamo.NewResourceRepo[domain.Supplier](client, tables.Suppliers), domain.NewSupplier)
	mountResource(r, authMw, "transaction", dynamo.NewResourceRepo[domain.Transaction](client, tables.Transactions), domain.NewTransaction)
	mountResource(r, authMw, "user", dynamo.NewResourceRepo[domain.User](client, tables.Users), domain.NewUser)
}

// mountResource registers the uniform CRUD route group for one entity.
// Creation is public; reads, updates and deletes require a bearer token.
func mountResource[I any, E any, PE resource.Entity[E]](
	r chi.Router,
	authMw func(http.Handler) http.Handler,
	path string,
	repo *dynamo.ResourceRepo[E],
	build func(in *I) PE,
) {
	h := handler.NewResource(resource.NewService(repo, build))
	r.Route("/"+path, func(r chi.Router) {
		r.Post("/", h.Create)
		r.Group(func(r chi.Router) {
			r.Use(authMw)
			r.Get("/", h.List)
			r.Get("/{id}", h.Get)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}
