// Command server runs the algebra service: a Gin HTTP API and WebSocket
// stream over the symbolic arithmetic engine.
package main
