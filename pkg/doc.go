// Package pkg provides the core libraries for deckflow presentation generation.
//
// # Overview
//
// Deckflow turns a topic or a raw deck spec into a structurally guaranteed
// presentation with rendered flow diagrams. The pkg directory is organized
// into these areas:
//
//  1. [spec] - Deck spec types, decoding, validation, and normalization
//  2. [plan] - Per-slide layout and image intent decisions
//  3. [diagram] - Flow diagram grid layout and edge routing, plus renderers
//  4. [pipeline] - Orchestration (spec → plan → render) with caching
//  5. [source], [theme], [cache] - Spec sources, visual presets, result caching
//
// # Architecture
//
// The typical data flow:
//
//	Topic or Spec File
//	         ↓
//	source.Source → spec.Normalize (repair into a valid deck)
//	         ↓
//	plan.Build (layout + image query per slide)
//	         ↓
//	diagram.Layout → render (SVG / PNG / DOT per flow slide)
//
// Every stage result is cacheable; the pipeline package wires the stages
// together and is what the CLI and the HTTP API both call.
package pkg
