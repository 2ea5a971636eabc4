// Package services holds the application logic behind the driving ports:
// the feed pagination controller, settings and repository actions.
//
// Services depend only on domain types and driven ports. Adapters are
// passed in by cmd/ghtrend.
package services
