package routes

import (
	"commerce_engine/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing      = "/ping"
	PathProposals = "/proposals"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addProposalRoutes(rg *gin.RouterGroup, proposalHandler *handlers.ProposalHandler) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.ListProposals)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PUT("/:id", proposalHandler.UpdateProposal)
		proposals.DELETE("/:id", proposalHandler.DeleteProposal)
		proposals.POST("/:id/validate", proposalHandler.ValidateProposal)
		proposals.POST("/:id/send", proposalHandler.SendProposal)
		proposals.POST("/:id/accept", proposalHandler.AcceptProposal)
		proposals.POST("/:id/reject", proposalHandler.RejectProposal)
	}
}
