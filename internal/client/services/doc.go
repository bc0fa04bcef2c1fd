// Package services contains the application services the CLI talks to.
// They wrap the raw API client with client-side conveniences (defaulting,
// validation) and keep the command layer free of transport concerns.
package services
