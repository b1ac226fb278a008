package routes

import (
	"github.com/Muskanagrawal2005/AyuBalance/config"
	"github.com/Muskanagrawal2005/AyuBalance/controllers"
	"github.com/Muskanagrawal2005/AyuBalance/middlewares"
	"github.com/Muskanagrawal2005/AyuBalance/models"
	"github.com/Muskanagrawal2005/AyuBalance/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	foodSvc := services.NewFoodService(config.DB)
	intakeSvc := services.NewIntakeService(config.DB)
	planSvc := services.NewPlanService(config.DB, config.DefaultTargets())
	analysisSvc := services.NewAnalysisService(config.DB, planSvc)
	hub := services.NewRealtimeHub()

	foodCtl := controllers.NewFoodController(foodSvc)
	intakeCtl := controllers.NewIntakeController(intakeSvc, hub)
	planCtl := controllers.NewPlanController(planSvc)
	analysisCtl := controllers.NewAnalysisController(analysisSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Food catalog, shared by both roles
	foods := r.Group("/api/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("", foodCtl.ListFoods)
		foods.POST("", middlewares.RequireRole(models.RoleDietitian), foodCtl.CreateFood)
	}

	// Patient-facing routes
	patient := r.Group("/api/patient")
	patient.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RolePatient))
	{
		patient.POST("/intake", intakeCtl.LogIntake)
		patient.GET("/intake", intakeCtl.GetIntakeByDate)
		patient.GET("/analysis", analysisCtl.GetMyAnalysis)
		patient.GET("/my-plans", planCtl.GetMyPlans)
	}

	// Dietitian-facing routes
	dietitian := r.Group("/api/dietitian")
	dietitian.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleDietitian))
	{
		dietitian.POST("/patients", controllers.CreatePatient)
		dietitian.GET("/patients", controllers.GetMyPatients)
		dietitian.GET("/patients/:id", controllers.GetPatientByID)
		dietitian.PUT("/patients/:id", controllers.UpdatePatient)
		dietitian.DELETE("/patients/:id", controllers.DeletePatient)

		dietitian.POST("/patients/:id/diet-plans", planCtl.CreatePlan)
		dietitian.GET("/patients/:id/diet-plans", planCtl.GetPatientPlans)
		dietitian.DELETE("/diet-plans/:id", planCtl.DeletePlan)

		dietitian.GET("/patients/:id/analysis", analysisCtl.GetPatientAnalysis)
		dietitian.GET("/patients/:id/logs", intakeCtl.GetPatientLog)

		dietitian.GET("/realtime", realtimeCtl.IntakeFeedWS)
	}

	return r
}
