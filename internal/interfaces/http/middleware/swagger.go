package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/fiscal/registros/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SwaggerConfig holds configuration for the docs endpoint guard.
type SwaggerConfig struct {
	Enabled    bool
	AllowedIPs []string // IPs or CIDRs; empty allows all
}

// SwaggerProtection hides the docs when disabled and restricts them to AllowedIPs.
func SwaggerProtection(cfg SwaggerConfig) gin.HandlerFunc {
	var allowedNets []*net.IPNet
	var allowedIPs []net.IP
	for _, ipStr := range cfg.AllowedIPs {
		if strings.Contains(ipStr, "/") {
			if _, network, err := net.ParseCIDR(ipStr); err == nil {
				allowedNets = append(allowedNets, network)
			}
		} else if ip := net.ParseIP(ipStr); ip != nil {
			allowedIPs = append(allowedIPs, ip)
		}
	}

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse("Documentación no disponible"))
			return
		}
		if len(cfg.AllowedIPs) > 0 && !isIPAllowed(net.ParseIP(c.ClientIP()), allowedIPs, allowedNets) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Acceso a la documentación restringido"))
			return
		}
		c.Next()
	}
}

func isIPAllowed(ip net.IP, allowedIPs []net.IP, allowedNets []*net.IPNet) bool {
	if ip == nil {
		return false
	}
	for _, allowed := range allowedIPs {
		if allowed.Equal(ip) {
			return true
		}
	}
	for _, network := range allowedNets {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}
