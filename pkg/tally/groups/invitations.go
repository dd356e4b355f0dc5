package groups

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tallyhq/tally/pkg/tally/auth"
	"github.com/tallyhq/tally/pkg/tally/models"
	"gorm.io/gorm"
)

// SendInvitationRequest represents the request to invite a user to a group
type SendInvitationRequest struct {
	GroupID  string `json:"groupId" binding:"required"`
	Username string `json:"username" binding:"required"`
}

// SendInvitation invites a user to a group by username. Any member may
// invite; the target must not already be a member or hold a pending
// invitation.
// @Summary Invite a user to a group
// @Description Send a pending invitation to a user by username
// @Tags invitations
// @Accept json
// @Produce json
// @Param request body SendInvitationRequest true "Invitation details"
// @Success 201 {object} models.GroupInvitation
// @Failure 400 {object} map[string]string "Already a member or already invited"
// @Failure 403 {object} map[string]string "Sender is not a member"
// @Failure 404 {object} map[string]string "User or group not found"
// @Security BearerAuth
// @Router /groups/invite [post]
func (h *Handler) SendInvitation(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var req SendInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var target models.User
	if err := h.db.Where("username = ?", strings.ToLower(req.Username)).First(&target).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	group, err := h.loadGroup(req.GroupID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	if !isMember(group, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this group"})
		return
	}

	if isMember(group, target.ID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User is already a member"})
		return
	}

	var existing models.GroupInvitation
	err = h.db.Where("receiver_id = ? AND group_id = ? AND status = ?",
		target.ID, group.ID, models.InvitationPending).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invitation already sent"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing invitations"})
		return
	}

	invitation := models.GroupInvitation{
		SenderID:   userID,
		ReceiverID: target.ID,
		GroupID:    group.ID,
		Status:     models.InvitationPending,
	}
	if err := h.db.Create(&invitation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invitation"})
		return
	}

	var populated models.GroupInvitation
	if err := h.db.Preload("Sender").Preload("Receiver").Preload("Group").
		First(&populated, "id = ?", invitation.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invitation"})
		return
	}

	c.JSON(http.StatusCreated, populated)
}

// ListInvitations returns the caller's pending invitations, newest first
// @Summary List pending invitations
// @Description Get the caller's pending invitations with sender and group populated
// @Tags invitations
// @Produce json
// @Success 200 {array} models.GroupInvitation
// @Security BearerAuth
// @Router /groups/invitations [get]
func (h *Handler) ListInvitations(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	invitations := []models.GroupInvitation{}
	err := h.db.Where("receiver_id = ? AND status = ?", userID, models.InvitationPending).
		Order("created_at DESC").
		Preload("Sender").Preload("Group").
		Find(&invitations).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invitations"})
		return
	}

	c.JSON(http.StatusOK, invitations)
}

// loadPendingInvitation fetches an invitation and runs the shared guards:
// it must exist (404), belong to the caller (403), and still be pending
// (400). On failure the response has already been written.
func (h *Handler) loadPendingInvitation(c *gin.Context, userID string) (models.GroupInvitation, bool) {
	var invitation models.GroupInvitation
	if err := h.db.First(&invitation, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
		return invitation, false
	}

	if invitation.ReceiverID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This invitation is not for you"})
		return invitation, false
	}

	if invitation.Status != models.InvitationPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invitation already processed"})
		return invitation, false
	}

	return invitation, true
}

// finalizeInvitation moves a pending invitation to a terminal status. A
// receiver can be re-invited after rejecting (or after accepting and then
// leaving), so an older invitation may already occupy the terminal slot of
// the (receiver, group, status) unique index; the superseded row is dropped
// before the transition.
func finalizeInvitation(tx *gorm.DB, invitation models.GroupInvitation, status models.InvitationStatus) error {
	err := tx.Where("receiver_id = ? AND group_id = ? AND status = ? AND id <> ?",
		invitation.ReceiverID, invitation.GroupID, status, invitation.ID).
		Delete(&models.GroupInvitation{}).Error
	if err != nil {
		return err
	}
	return tx.Model(&invitation).Update("status", status).Error
}

// AcceptInvitation accepts a pending invitation, adding the receiver to
// the group. The member add uses FirstOrCreate, so repeating the step is
// safe and never inserts a duplicate.
// @Summary Accept an invitation
// @Description Accept a pending invitation and join the group
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation ID"
// @Success 200 {object} map[string]interface{} "Invitation accepted"
// @Failure 400 {object} map[string]string "Invitation already processed"
// @Failure 403 {object} map[string]string "Not the receiver"
// @Failure 404 {object} map[string]string "Invitation not found"
// @Security BearerAuth
// @Router /groups/invitations/{id}/accept [post]
func (h *Handler) AcceptInvitation(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	invitation, ok := h.loadPendingInvitation(c, userID)
	if !ok {
		return
	}

	var group models.Group
	if err := h.db.First(&group, "id = ?", invitation.GroupID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		member := models.GroupMember{GroupID: group.ID, UserID: userID}
		if err := tx.Where(&member).FirstOrCreate(&member).Error; err != nil {
			return err
		}
		return finalizeInvitation(tx, invitation, models.InvitationAccepted)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept invitation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invitation accepted successfully", "group": group})
}

// RejectInvitation rejects a pending invitation. No group mutation occurs.
// @Summary Reject an invitation
// @Description Reject a pending invitation
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation ID"
// @Success 200 {object} map[string]string "Invitation rejected"
// @Failure 400 {object} map[string]string "Invitation already processed"
// @Failure 403 {object} map[string]string "Not the receiver"
// @Failure 404 {object} map[string]string "Invitation not found"
// @Security BearerAuth
// @Router /groups/invitations/{id}/reject [post]
func (h *Handler) RejectInvitation(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	invitation, ok := h.loadPendingInvitation(c, userID)
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		return finalizeInvitation(tx, invitation, models.InvitationRejected)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject invitation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invitation rejected successfully"})
}
