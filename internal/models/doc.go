// Package models defines the core domain models for TipTop.
//
// # Models
//
//   - Inputs: the raw text a user has typed into the three widget fields
//   - Session: a remotely held form (Inputs plus bookkeeping) served over RPC
//
// Calculated shares are not modelled here: they are derived from Inputs on
// every read by the calculator package and never stored.
//
// # Design Principles
//
//  1. Inputs stay text: partially typed or non-numeric values are legal state
//  2. No persistence: sessions live in memory and disappear with the process
//  3. Relationships use ID strings rather than pointers
package models
