package worker

import (
	"github.com/supporthub/ticket-service/internal/service"
)

// StartAuditRecorder registers audit handlers on the event dispatcher.
func StartAuditRecorder(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
