// Package chatv1 is the wire contract of marketchat.chat.v1.ChatService, generated from
// proto/chat/v1/chat.proto, plus the mapping between its messages and the chat domain.
package chatv1

//go:generate protoc -I ../../../../proto --go_out=../../../.. --go_opt=module=marketchat --go-grpc_out=../../../.. --go-grpc_opt=module=marketchat chat/v1/chat.proto

// ServiceName is the health-check name of ChatService.
const ServiceName = "marketchat.chat.v1.ChatService"
