package controllers

import (
	"fmt"
	"net/url"

	"mergington-activities/src/metrics"
	"mergington-activities/src/models"
	"mergington-activities/src/services/activities"
	"mergington-activities/src/utils"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// ActivityController handler ของ /activities ถือ registry ที่ถูก inject เข้ามา
type ActivityController struct {
	registry *activities.Registry
	log      *zap.Logger
}

func NewActivityController(registry *activities.Registry, log *zap.Logger) *ActivityController {
	return &ActivityController{registry: registry, log: log}
}

// GetAllActivities godoc
// @Summary      Get all activities
// @Description  Returns every activity keyed by name
// @Tags         activities
// @Produce      json
// @Success      200  {object}  map[string]models.Activity
// @Router       /activities [get]
func (ac *ActivityController) GetAllActivities(c *fiber.Ctx) error {
	return c.JSON(ac.registry.List())
}

// SignupForActivity godoc
// @Summary      Sign up a student for an activity
// @Tags         activities
// @Produce      json
// @Param        name   path   string  true  "Activity name"
// @Param        email  query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /activities/{name}/signup [post]
func (ac *ActivityController) SignupForActivity(c *fiber.Ctx) error {
	name, email, err := rosterRequest(c)
	if err != nil {
		return err
	}

	if err := ac.registry.Signup(name, email); err != nil {
		return ac.rosterError(c, "signup", name, email, err)
	}

	metrics.RosterOperations.WithLabelValues("signup", "ok").Inc()
	return c.JSON(models.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// UnregisterFromActivity godoc
// @Summary      Remove a student from an activity
// @Tags         activities
// @Produce      json
// @Param        name   path   string  true  "Activity name"
// @Param        email  query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /activities/{name}/unregister [post]
func (ac *ActivityController) UnregisterFromActivity(c *fiber.Ctx) error {
	name, email, err := rosterRequest(c)
	if err != nil {
		return err
	}

	if err := ac.registry.Unregister(name, email); err != nil {
		return ac.rosterError(c, "unregister", name, email, err)
	}

	metrics.RosterOperations.WithLabelValues("unregister", "ok").Inc()
	return c.JSON(models.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// rosterRequest อ่านชื่อกิจกรรมจาก path และ email จาก query
func rosterRequest(c *fiber.Ctx) (string, string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Invalid activity name")
	}

	var q models.SignupQuery
	if err := c.QueryParser(&q); err != nil {
		return "", "", fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid query: "+err.Error())
	}
	if msg := utils.ValidateStruct(q); msg != "" {
		return "", "", fiber.NewError(fiber.StatusUnprocessableEntity, msg)
	}
	return fiberutils.CopyString(name), fiberutils.CopyString(q.Email), nil
}

func (ac *ActivityController) rosterError(c *fiber.Ctx, op, name, email string, err error) error {
	status := utils.StatusFor(err)
	if status == fiber.StatusInternalServerError {
		metrics.RosterOperations.WithLabelValues(op, "error").Inc()
		ac.log.Error("❌ roster update failed", zap.String("operation", op), zap.String("activity", name), zap.Error(err))
		return err
	}

	outcome := "conflict"
	if status == fiber.StatusNotFound {
		outcome = "not_found"
	}
	metrics.RosterOperations.WithLabelValues(op, outcome).Inc()
	ac.log.Info("roster update rejected",
		zap.String("operation", op),
		zap.String("activity", name),
		zap.String("email", email),
		zap.String("reason", err.Error()),
	)
	return utils.HandleError(c, status, err.Error())
}
