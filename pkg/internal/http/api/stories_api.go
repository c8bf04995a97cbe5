package api

import (
	"errors"
	"time"

	"git.solsynth.dev/hypernet/storyview/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/storyview/pkg/internal/models"
	"git.solsynth.dev/hypernet/storyview/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

type storyRequest struct {
	Post         models.Post        `json:"post" validate:"required"`
	State        models.ActionState `json:"state"`
	CommentCount int                `json:"comment_count" validate:"min=0"`
}

func mountStory(data storyRequest) (*services.StoryView, error) {
	view, err := services.MountStoryView(services.StoryMount{
		Post:         data.Post,
		State:        data.State,
		CommentCount: data.CommentCount,
	}, services.ReadStoryOptions())
	if err != nil {
		if errors.Is(err, services.ErrMalformedMetadata) {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return view, nil
}

func renderStory(c *fiber.Ctx) error {
	var data storyRequest
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	view, err := mountStory(data)
	if err != nil {
		return err
	}
	defer view.Unmount()

	return c.JSON(view.Render(time.Now()))
}
