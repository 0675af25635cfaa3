package httpserver

import (
	"log"

	"bankingapp/internal/domain"
	custrepo "bankingapp/internal/repository/customer"
	customersvc "bankingapp/internal/service/customer"
	"github.com/gin-gonic/gin"
)

type createCustomerRequest struct {
	CustomerGUID  string               `json:"customer_guid" binding:"omitempty,uuid4"`
	FirstName     string               `json:"first_name" binding:"required,name_chars"`
	MiddleNames   *string              `json:"middle_names" binding:"omitempty,name_chars"`
	LastName      string               `json:"last_name" binding:"required,name_chars"`
	DateOfBirth   string               `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	PhoneNumber   string               `json:"phone_number" binding:"required,max=15"`
	EmailAddress  *string              `json:"email_address" binding:"omitempty,email"`
	Address       string               `json:"address" binding:"required,max=255"`
	AccountGUID   string               `json:"account_guid" binding:"omitempty,uuid4"`
	AccountName   string               `json:"account_name" binding:"required,max=100"`
	AccountStatus domain.AccountStatus `json:"account_status" binding:"omitempty,oneof=Active Inactive"`
}

type updateCustomerRequest struct {
	FirstName    *string `json:"first_name" binding:"omitempty,name_chars"`
	MiddleNames  *string `json:"middle_names" binding:"omitempty,name_chars"`
	LastName     *string `json:"last_name" binding:"omitempty,name_chars"`
	PhoneNumber  *string `json:"phone_number" binding:"omitempty,max=15"`
	EmailAddress *string `json:"email_address" binding:"omitempty,email"`
	Address      *string `json:"address" binding:"omitempty,max=255"`
}

func listCustomers(svc *customersvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		env, err := svc.GetAll(c.Request.Context())
		if err != nil {
			serviceError(c, logger, err)
			return
		}
		c.JSON(env.StatusCode, env)
	}
}

func getCustomer(svc *customersvc.Service, logger *log.Logger) gin.HandlerFunc {
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

func createCustomer(svc *customersvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindingError(c, err)
			return
		}

		env, err := svc.Create(c.Request.Context(), customersvc.CreateInput{
			CustomerGUID:  req.CustomerGUID,
			FirstName:     req.FirstName,
			MiddleNames:   req.MiddleNames,
			LastName:      req.LastName,
			DateOfBirth:   req.DateOfBirth,
			PhoneNumber:   req.PhoneNumber,
			EmailAddress:  req.EmailAddress,
			Address:       req.Address,
			AccountGUID:   req.AccountGUID,
			AccountName:   req.AccountName,
			AccountStatus: req.AccountStatus,
		})
		if err != nil {
			serviceError(c, logger, err)
			return
		}
		c.JSON(env.StatusCode, env)
	}
}

func updateCustomer(svc *customersvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		guid, ok := guidParam(c)
		if !ok {
			return
		}

		var req updateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindingError(c, err)
			return
		}

		env, err := svc.Update(c.Request.Context(), guid, custrepo.Patch{
			FirstName:    req.FirstName,
			MiddleNames:  req.MiddleNames,
			LastName:     req.LastName,
			PhoneNumber:  req.PhoneNumber,
			EmailAddress: req.EmailAddress,
			Address:      req.Address,
		})
		if err != nil {
			serviceError(c, logger, err)
			return
		}
		c.JSON(env.StatusCode, env)
	}
}

func deleteCustomer(svc *customersvc.Service, logger *log.Logger) gin.HandlerFunc {
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
