package handlers

import (
	"net/http"

	"raisedesk/models"
	clientService "raisedesk/services/client"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ClientHandler struct {
	Service clientService.ClientService
}

func NewClientHandler(s clientService.ClientService) *ClientHandler {
	return &ClientHandler{Service: s}
}

func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	var q models.ClientQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	clients, err := h.Service.ListClients(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	cl, err := h.Service.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load client")
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *ClientHandler) CreateClientHandler(c *gin.Context) {
	var cl models.Client
	if err := c.ShouldBindJSON(&cl); err != nil {
		badRequest(c, err)
		return
	}
	// Ids are assigned by the store.
	cl.ID = ""
	if err := h.Service.CreateClient(c.Request.Context(), &cl); err != nil {
		respondError(c, err, "Failed to create client")
		return
	}
	getLogger(c).Info("client created", zap.String("clientId", cl.ID))
	c.JSON(http.StatusCreated, cl)
}

func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	var cl models.Client
	if err := c.ShouldBindJSON(&cl); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Service.UpdateClient(c.Request.Context(), c.Param("id"), &cl); err != nil {
		respondError(c, err, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	if err := h.Service.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete client")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
