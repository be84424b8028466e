// Package agent provides the built-in decision-making agents and the
// configuration-keyed factory that selects between them. Every agent
// implements the engine.Agent contract: Decide when acting, Observe when not,
// Reset between games.
package agent
