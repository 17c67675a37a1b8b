// Package domain defines the JSON documents returned by the service.
package domain

import (
	"slices"
	"time"
)

// Fixed response values.
const (
	AppName        = "eks-demo-app"
	Author         = "Kartheepan"
	Description    = "Sample CI/CD pipeline with GitHub Actions and Flux"
	WelcomeText    = "Welcome to EKS Demo Application!"
	StatusHealthy  = "healthy"
	timestampShape = "2006-01-02T15:04:05.000Z07:00"
)

// techStack lists what this build is made of, in display order.
var techStack = []string{
	"Go",
	"Gin",
	"Zap",
	"Prometheus",
	"Docker",
	"Kubernetes",
	"EKS",
	"Flux",
	"GitHub Actions",
}

// TechStack returns a copy of the technology list reported by /api/info.
func TechStack() []string {
	return slices.Clone(techStack)
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// NewHealthStatus reports a healthy instance as of now.
func NewHealthStatus(version string, now time.Time) HealthStatus {
	return HealthStatus{
		Status:    StatusHealthy,
		Timestamp: FormatTimestamp(now),
		Version:   version,
	}
}

// FormatTimestamp renders t in UTC as ISO-8601 with millisecond precision,
// e.g. 2026-10-17T09:30:00.123Z.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampShape)
}

// WelcomeMessage is the body of GET /.
type WelcomeMessage struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Hostname    string `json:"hostname"`
}

// NewWelcomeMessage builds the welcome document.
func NewWelcomeMessage(version, environment, hostname string) WelcomeMessage {
	return WelcomeMessage{
		Message:     WelcomeText,
		Version:     version,
		Environment: environment,
		Hostname:    hostname,
	}
}

// AppInfo is the body of GET /api/info.
type AppInfo struct {
	App         string   `json:"app"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
}

// NewAppInfo builds the static application descriptor.
func NewAppInfo() AppInfo {
	return AppInfo{
		App:         AppName,
		Author:      Author,
		Description: Description,
		TechStack:   TechStack(),
	}
}
