package api

import (
	"time"

	"git.solsynth.dev/hypernet/storyview/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/storyview/pkg/internal/models"
	"git.solsynth.dev/hypernet/storyview/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func getMountedView(c *fiber.Ctx) (*services.StoryView, error) {
	view, err := services.Views.Get(c.Params("viewId"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return view, nil
}

func mountView(c *fiber.Ctx) error {
	var data storyRequest
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	view, err := mountStory(data)
	if err != nil {
		return err
	}
	id := services.Views.Add(view)

	return c.JSON(fiber.Map{
		"id":    id,
		"frame": view.Render(time.Now()),
	})
}

func getView(c *fiber.Ctx) error {
	view, err := getMountedView(c)
	if err != nil {
		return err
	}

	return c.JSON(view.Render(time.Now()))
}

func updateViewState(c *fiber.Ctx) error {
	view, err := getMountedView(c)
	if err != nil {
		return err
	}

	var data models.ActionState
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	view.UpdateState(data)

	return c.JSON(view.Render(time.Now()))
}

func clickViewContent(c *fiber.Ctx) error {
	view, err := getMountedView(c)
	if err != nil {
		return err
	}

	var data struct {
		Target []int `json:"target" validate:"required,dive,min=0"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}
	opened := view.HandleContentClickPath(data.Target)

	return c.JSON(fiber.Map{
		"opened": opened,
		"frame":  view.Render(time.Now()),
	})
}

func selectViewMenu(c *fiber.Ctx) error {
	view, err := getMountedView(c)
	if err != nil {
		return err
	}

	var data struct {
		Key string `json:"key" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"intent": view.HandleMenuSelect(data.Key),
		"frame":  view.Render(time.Now()),
	})
}

func selectViewFooter(c *fiber.Ctx) error {
	view, err := getMountedView(c)
	if err != nil {
		return err
	}

	var data struct {
		Key string `json:"key" validate:"required,oneof=like share"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"intent": view.HandleFooterAction(data.Key),
		"frame":  view.Render(time.Now()),
	})
}

func controlViewGallery(c *fiber.Ctx) error {
	view, err := getMountedView(c)
	if err != nil {
		return err
	}

	var data struct {
		Action string `json:"action" validate:"required,oneof=next prev close"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	switch data.Action {
	case "next":
		view.NextImage()
	case "prev":
		view.PrevImage()
	case "close":
		view.CloseGallery()
	}

	return c.JSON(view.Render(time.Now()))
}

func unmountView(c *fiber.Ctx) error {
	if err := services.Views.Remove(c.Params("viewId")); err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
