// Package services contains the core application services.
//
// Services implement the driving ports and depend only on the driven
// ports, never on concrete adapters. Wiring happens in the CLI layer.
package services
