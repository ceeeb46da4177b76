package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// sessionCookieMaxAge matches the token TTL so cookie and token expire together.
const sessionCookieMaxAge = 86400

func setupRoutes(r *gin.Engine) {
	r.Use(resolveIdentity())

	// Pages. The UI itself is static; only the access policy lives here.
	r.GET("/", func(c *gin.Context) { c.File("./public/index.html") })
	r.GET("/login", redirectIfAuthenticated(), func(c *gin.Context) { c.File("./public/login.html") })
	r.GET("/register", redirectIfAuthenticated(), func(c *gin.Context) { c.File("./public/register.html") })
	r.GET("/dashboard", requireAuthPage(), func(c *gin.Context) { c.File("./public/dashboard/index.html") })

	r.POST("/register", registerHandler)
	r.POST("/login", loginHandler)
	r.GET("/logout", logoutHandler)

	api := r.Group("/api")
	api.Use(requireAuthAPI())
	api.GET("/me", meHandler)
	api.GET("/transactions", listTransactionsHandler)
	api.POST("/transactions", createTransactionHandler)
	api.PUT("/transactions/:id", updateTransactionHandler)
	api.DELETE("/transactions/:id", deleteTransactionHandler)
}

func registerHandler(c *gin.Context) {
	var req struct {
		Name     string `form:"name" json:"name"`
		Email    string `form:"email" json:"email"`
		Password string `form:"password" json:"password"`
	}
	if err := c.ShouldBind(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}
	if _, err := RegisterUser(req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		log.Printf("register failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func loginHandler(c *gin.Context) {
	var req struct {
		Email    string `form:"email" json:"email"`
		Password string `form:"password" json:"password"`
	}
	if err := c.ShouldBind(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}
	user, err := Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		log.Printf("login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	token, err := mintToken(user, time.Now())
	if err != nil {
		log.Printf("token mint failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.SetCookie(sessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// logoutHandler clears the identity cookie. The token itself stays valid until
// it expires; logout only removes the carrier.
func logoutHandler(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func meHandler(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "context missing identity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": identity})
}

func listTransactionsHandler(c *gin.Context) {
	identity, _ := identityFromContext(c)
	items, err := listTransactions(identity.UserID)
	if err != nil {
		log.Printf("list transactions failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch transactions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": items})
}

func createTransactionHandler(c *gin.Context) {
	identity, _ := identityFromContext(c)
	var in transactionInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type and positive amount required"})
		return
	}
	id, err := createTransaction(identity.UserID, in)
	if err != nil {
		if errors.Is(err, ErrInvalidTransaction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type and positive amount required"})
			return
		}
		log.Printf("create transaction failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add transaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func updateTransactionHandler(c *gin.Context) {
	identity, _ := identityFromContext(c)
	id, ok := transactionIDParam(c)
	if !ok {
		return
	}
	var in transactionInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type and positive amount required"})
		return
	}
	if err := updateTransaction(identity.UserID, id, in); err != nil {
		switch {
		case errors.Is(err, ErrInvalidTransaction):
			c.JSON(http.StatusBadRequest, gin.H{"error": "type and positive amount required"})
		case errors.Is(err, ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
		default:
			log.Printf("update transaction failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update transaction"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func deleteTransactionHandler(c *gin.Context) {
	identity, _ := identityFromContext(c)
	id, ok := transactionIDParam(c)
	if !ok {
		return
	}
	if err := deleteTransaction(identity.UserID, id); err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		log.Printf("delete transaction failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete transaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// transactionIDParam parses the :id route parameter. A non-numeric id can't match
// any row, so it gets the same not-found answer as an unowned one.
func transactionIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
		return 0, false
	}
	return uint(id), true
}
