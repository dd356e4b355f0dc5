package groups

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tallyhq/tally/pkg/tally/auth"
	"github.com/tallyhq/tally/pkg/tally/models"
	"gorm.io/gorm"
)

// Handler handles group, invitation and group transaction requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new groups handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	MemberUsernames []string `json:"memberUsernames"`
}

// UpdateGroupRequest represents the request to update a group
type UpdateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GroupResponse represents a group with creator and member profiles
type GroupResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedBy   models.User   `json:"created_by"`
	Members     []models.User `json:"members"`
	IsActive    bool          `json:"is_active"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// loadGroup fetches a group with creator and member profiles populated
func (h *Handler) loadGroup(groupID string) (models.Group, error) {
	var group models.Group
	err := h.db.Preload("CreatedBy").Preload("Members.User").
		First(&group, "id = ?", groupID).Error
	return group, err
}

// isMember reports whether the user is in the group's member set
func isMember(group models.Group, userID string) bool {
	for _, m := range group.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// memberIDs returns the group's member user IDs in join order
func memberIDs(group models.Group) []string {
	ids := make([]string, len(group.Members))
	for i, m := range group.Members {
		ids[i] = m.UserID
	}
	return ids
}

func groupResponse(group models.Group) GroupResponse {
	members := make([]models.User, len(group.Members))
	for i, m := range group.Members {
		members[i] = m.User
	}
	return GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		CreatedBy:   group.CreatedBy,
		Members:     members,
		IsActive:    group.IsActive,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

// Create creates a group with the caller as sole member and sends pending
// invitations to each resolvable username. The creator and unknown
// usernames are silently skipped.
// @Summary Create a group
// @Description Create a group and invite members by username
// @Tags groups
// @Accept json
// @Produce json
// @Param request body CreateGroupRequest true "Group details"
// @Success 201 {object} GroupResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /groups [post]
func (h *Handler) Create(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group := models.Group{
		Name:        req.Name,
		Description: req.Description,
		CreatedByID: userID,
		IsActive:    true,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}

		// Creator is always a member
		if err := tx.Create(&models.GroupMember{GroupID: group.ID, UserID: userID}).Error; err != nil {
			return err
		}

		if len(req.MemberUsernames) == 0 {
			return nil
		}

		usernames := make([]string, 0, len(req.MemberUsernames))
		for _, u := range req.MemberUsernames {
			usernames = append(usernames, strings.ToLower(u))
		}

		var invitees []models.User
		if err := tx.Where("username IN ? AND id <> ?", usernames, userID).Find(&invitees).Error; err != nil {
			return err
		}

		for _, invitee := range invitees {
			invitation := models.GroupInvitation{
				SenderID:   userID,
				ReceiverID: invitee.ID,
				GroupID:    group.ID,
				Status:     models.InvitationPending,
			}
			if err := tx.Create(&invitation).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group"})
		return
	}

	populated, err := h.loadGroup(group.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch group"})
		return
	}

	c.JSON(http.StatusCreated, groupResponse(populated))
}

// List returns the caller's active groups, newest-updated first
// @Summary List groups
// @Description Get all active groups the caller is a member of
// @Tags groups
// @Produce json
// @Success 200 {array} GroupResponse
// @Security BearerAuth
// @Router /groups [get]
func (h *Handler) List(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var groups []models.Group
	err := h.db.
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ? AND groups.is_active = ?", userID, true).
		Order("groups.updated_at DESC").
		Preload("CreatedBy").Preload("Members.User").
		Find(&groups).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch groups"})
		return
	}

	responses := make([]GroupResponse, len(groups))
	for i, g := range groups {
		responses[i] = groupResponse(g)
	}

	c.JSON(http.StatusOK, responses)
}

// Get returns a single group the caller belongs to
// @Summary Get a group
// @Description Get a group with creator and member profiles
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} GroupResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	group, err := h.loadGroup(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	if !isMember(group, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this group"})
		return
	}

	c.JSON(http.StatusOK, groupResponse(group))
}

// Update renames or re-describes a group (creator only)
// @Summary Update a group
// @Description Update a group's name or description (creator only)
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body UpdateGroupRequest true "Updated group details"
// @Success 200 {object} GroupResponse
// @Failure 403 {object} map[string]string "Only the creator can update the group"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var group models.Group
	if err := h.db.First(&group, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	if group.CreatedByID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only group creator can update the group"})
		return
	}

	var req UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != "" {
		group.Name = req.Name
	}
	if req.Description != "" {
		group.Description = req.Description
	}

	if err := h.db.Save(&group).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update group"})
		return
	}

	populated, err := h.loadGroup(group.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch group"})
		return
	}

	c.JSON(http.StatusOK, groupResponse(populated))
}

// Delete soft-deletes a group (creator only). Pending invitations for the
// group are removed in the same transaction; updating them to a terminal
// status instead could collide with an older rejected invitation under the
// (receiver, group, status) unique index. Group transactions are kept as
// history. There is no undelete.
// @Summary Delete a group
// @Description Soft-delete a group (creator only)
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} map[string]string "Group deleted"
// @Failure 403 {object} map[string]string "Only the creator can delete the group"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var group models.Group
	if err := h.db.First(&group, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	if group.CreatedByID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only group creator can delete the group"})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&group).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Where("group_id = ? AND status = ?", group.ID, models.InvitationPending).
			Delete(&models.GroupInvitation{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete group"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Group deleted successfully"})
}

// Leave removes the caller from a group. The creator cannot leave.
// @Summary Leave a group
// @Description Leave a group (creator must delete instead)
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} map[string]string "Left group"
// @Failure 400 {object} map[string]string "Creator cannot leave"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/leave [post]
func (h *Handler) Leave(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var group models.Group
	if err := h.db.First(&group, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	if group.CreatedByID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Group creator cannot leave. Delete the group instead."})
		return
	}

	if err := h.db.Where("group_id = ? AND user_id = ?", group.ID, userID).
		Delete(&models.GroupMember{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave group"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left group successfully"})
}

// RegisterRoutes registers group, invitation and group transaction routes.
// Static segments are registered before parameterized ones so /invite and
// /invitations don't collide with /:id.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.POST("/invite", h.SendInvitation)
	rg.GET("/invitations", h.ListInvitations)
	rg.POST("/invitations/:id/accept", h.AcceptInvitation)
	rg.POST("/invitations/:id/reject", h.RejectInvitation)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/leave", h.Leave)
	rg.GET("/:id/transactions", h.ListTransactions)
	rg.POST("/:id/transactions", h.CreateTransaction)
	rg.DELETE("/:id/transactions/:transactionId", h.DeleteTransaction)
	rg.GET("/:id/balances", h.Balances)
}
