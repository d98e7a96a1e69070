package handler

import "github.com/gin-gonic/gin"

// Set bundles the HTTP handlers the API mounts.
type Set struct {
	Residents     *ResidentHandler
	WasteReports  *WasteReportHandler
	Export        *ExportHandler
	Schedules     *ScheduleHandler
	Routes        *RouteHandler
	Education     *EducationHandler
	Notifications *NotificationHandler
	Dashboard     *DashboardHandler
}

// Register mounts every API route on the given group.
func (s *Set) Register(api *gin.RouterGroup) {
	api.GET("/residents", s.Residents.List)
	api.POST("/residents", s.Residents.Create)
	api.GET("/residents/:id", s.Residents.Get)
	api.PATCH("/residents/:id", s.Residents.Update)

	api.GET("/waste-reports", s.WasteReports.List)
	api.POST("/waste-reports", s.WasteReports.Create)
	api.GET("/waste-reports/export", s.Export.Export)
	api.GET("/waste-reports/:id", s.WasteReports.Get)
	api.PATCH("/waste-reports/:id", s.WasteReports.Update)

	api.GET("/collection-schedules", s.Schedules.List)
	api.POST("/collection-schedules", s.Schedules.Create)
	api.GET("/collection-schedules/:id", s.Schedules.Get)
	api.PATCH("/collection-schedules/:id", s.Schedules.Update)

	api.GET("/routes", s.Routes.List)
	api.POST("/routes", s.Routes.Create)
	api.GET("/routes/:id", s.Routes.Get)
	api.PATCH("/routes/:id", s.Routes.Update)

	api.GET("/educational-content", s.Education.List)
	api.POST("/educational-content", s.Education.Create)
	api.GET("/educational-content/:id", s.Education.Get)
	api.PATCH("/educational-content/:id", s.Education.Update)

	api.GET("/notifications", s.Notifications.List)
	api.POST("/notifications", s.Notifications.Create)

	api.GET("/dashboard/stats", s.Dashboard.Stats)
}
