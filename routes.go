// routes.go
package main

import (
	"github.com/gin-gonic/gin"

	"campaign-crm/controllers"
	"campaign-crm/services"
)

// SetupRoutes wires the store into the REST endpoint table.
func SetupRoutes(r *gin.Engine, store *services.Store) {
	people := controllers.NewPeopleController(store)
	events := controllers.NewEventsController(store)
	tasks := controllers.NewTasksController(store)
	users := controllers.NewUsersController(store)

	r.GET("/health", controllers.Health)

	api := r.Group("/api")
	{
		// PEOPLE
		api.GET("/people", people.ListPeople)
		api.POST("/people", people.CreatePerson)
		api.POST("/people/check-duplicates", people.CheckDuplicates)
		api.POST("/people/validate", people.ValidatePerson)
		api.GET("/people/:id", people.GetPerson)
		api.PATCH("/people/:id", people.UpdatePerson)
		api.DELETE("/people/:id", people.DeletePerson)

		// EVENTS
		api.GET("/events", events.ListEvents)
		api.POST("/events", events.CreateEvent)
		api.GET("/events/stats", events.GetEventStats)
		api.GET("/events/:id", events.GetEvent)
		api.PATCH("/events/:id", events.UpdateEvent)
		api.DELETE("/events/:id", events.DeleteEvent)

		// REGISTRATIONS
		api.POST("/events/:id/register", events.Register)
		api.GET("/events/:id/registrations", events.ListRegistrations)
		api.GET("/events/:id/qrcode", events.GetEventQRCode)
		api.PATCH("/registrations/:id/status", events.UpdateRegistrationStatus)

		// TASKS
		api.GET("/tasks", tasks.ListTasks)
		api.POST("/tasks", tasks.CreateTask)
		api.GET("/tasks/:id", tasks.GetTask)
		api.PATCH("/tasks/:id", tasks.UpdateTask)
		api.DELETE("/tasks/:id", tasks.DeleteTask)

		// USERS
		api.GET("/users", users.ListUsers)
	}
}
