package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL)
	{
		stories := api.Group("/stories")
		{
			stories.Post("/render", renderStory)
		}

		views := api.Group("/views")
		{
			views.Post("/", mountView)
			views.Get("/:viewId", getView)
			views.Put("/:viewId/state", updateViewState)
			views.Post("/:viewId/click", clickViewContent)
			views.Post("/:viewId/menu", selectViewMenu)
			views.Post("/:viewId/footer", selectViewFooter)
			views.Post("/:viewId/gallery", controlViewGallery)
			views.Delete("/:viewId", unmountView)
		}
	}
}
