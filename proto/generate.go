// Package proto holds the LLM sidecar protocol definition. The generated
// stubs (llm.pb.go, llm_grpc.pb.go) are produced by protoc and not
// committed.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
