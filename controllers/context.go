package controllers

import (
	"learnhub/config"
	"learnhub/logger"
	"learnhub/models"
	"learnhub/services"

	"github.com/gin-gonic/gin"
)

const (
	generatorKey     = "generator"
	configurationKey = "configuration"
	loggerKey        = "logger"
	ctxUserKey       = "auth_user"
)

func SetGenerator(gen services.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(generatorKey, gen)
		c.Next()
	}
}

func GeneratorInstance(c *gin.Context) services.Generator {
	v, _ := c.Get(generatorKey)
	gen, _ := v.(services.Generator)
	return gen
}

func SetConfiguration(cfg config.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(configurationKey, cfg)
		c.Next()
	}
}

func ConfigurationInstance(c *gin.Context) config.Configuration {
	v, _ := c.Get(configurationKey)
	cfg, _ := v.(config.Configuration)
	return cfg
}

// SetLogger stores the request scoped logger.
func SetLogger(c *gin.Context, log *logger.Logger) {
	c.Set(loggerKey, log)
}

func LoggerInstance(c *gin.Context) *logger.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if log, ok := v.(*logger.Logger); ok {
			return log
		}
	}
	return logger.NewNop()
}

func SetUserLogged(c *gin.Context, user models.UserWithRole) {
	c.Set(ctxUserKey, user)
}

// GetUserLogged returns the user loaded by IdentifyUser.
func GetUserLogged(c *gin.Context) (models.UserWithRole, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.UserWithRole{}, false
	}
	user, ok := v.(models.UserWithRole)
	return user, ok
}
