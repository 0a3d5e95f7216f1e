// api/controller/controllers.go
package controller

import "github.com/oryxsign/etaverify/api/service"

type Controllers struct {
	Compliance *ComplianceController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Compliance: NewComplianceController(services.Compliance),
	}
}
