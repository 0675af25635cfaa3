package httpserver

import (
	"log"

	"bankingapp/internal/domain"
	acctrepo "bankingapp/internal/repository/account"
	accountsvc "bankingapp/internal/service/account"
	"github.com/gin-gonic/gin"
)

type updateAccountRequest struct {
	AccountName *string               `json:"account_name" binding:"omitempty,max=100"`
	Status      *domain.AccountStatus `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

func listAccounts(svc *accountsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		env, err := svc.GetAll(c.Request.Context())
		if err != nil {
			serviceError(c, logger, err)
			return
		}
		c.JSON(env.StatusCode, env)
	}
}

func getAccount(svc *accountsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		guid, ok := guidParam(c)
		if !ok {
			return
		}
		env, err := svc.Get(c.Request.Context(), guid)
		if err != nil {
			serviceError(c, logger, err)
			return
		}
		c.JSON(env.StatusCode, env)
	}
}

func updateAccount(svc *accountsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		guid, ok := guidParam(c)
		if !ok {
			return
		}

		var req updateAccountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindingError(c, err)
			return
		}

		env, err := svc.Update(c.Request.Context(), guid, acctrepo.Patch{
			AccountName: req.AccountName,
			Status:      req.Status,
		})
		if err != nil {
			serviceError(c, logger, err)
			return
		}
		c.JSON(env.StatusCode, env)
	}
}

func deleteAccount(svc *accountsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		guid, ok := guidParam(c)
		if !ok {
			return
		}
		env, err := svc.Delete(c.Request.Context(), guid)
		if err != nil {
			serviceError(c, logger, err)
			return
		}
		c.JSON(env.StatusCode, env)
	}
}
