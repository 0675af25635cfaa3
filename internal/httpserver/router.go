package httpserver

import (
	"log"

	accountsvc "bankingapp/internal/service/account"
	customersvc "bankingapp/internal/service/customer"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services the routes dispatch to.
type Deps struct {
	CustomerSvc *customersvc.Service
	AccountSvc  *accountsvc.Service
}

// buildRouter wires the versioned banking routes plus health endpoints.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, apiVersion string) (*gin.Engine, error) {
	if err := registerValidations(); err != nil {
		return nil, err
	}

	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api/" + apiVersion)

	customers := api.Group("/customers")
	{
		customers.GET("", listCustomers(deps.CustomerSvc, logger))
		customers.GET("/:guid", getCustomer(deps.CustomerSvc, logger))
		customers.POST("", createCustomer(deps.CustomerSvc, logger))
		customers.PUT("/:guid", updateCustomer(deps.CustomerSvc, logger))
		customers.DELETE("/:guid", deleteCustomer(deps.CustomerSvc, logger))
	}

	// No POST /accounts: accounts are created only through customer creation.
	accounts := api.Group("/accounts")
	{
		accounts.GET("", listAccounts(deps.AccountSvc, logger))
		accounts.GET("/:guid", getAccount(deps.AccountSvc, logger))
		accounts.PUT("/:guid", updateAccount(deps.AccountSvc, logger))
		accounts.DELETE("/:guid", deleteAccount(deps.AccountSvc, logger))
	}

	return router, nil
}
