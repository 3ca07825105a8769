package wire

import (
	"bytes"
	"fmt"
	"io"
)

// DecodeFunc turns a validated payload into a typed message.
type DecodeFunc func(payload []byte) (Message, error)

// Registry maps command strings to payload decoders. Build it before
// decoding begins and treat it as read-only afterward; an immutable
// registry is safe to share across connections without locking.
type Registry struct {
	decoders map[string]DecodeFunc
}

func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]DecodeFunc)}
}

// Register binds command to fn, replacing any previous binding.
func (reg *Registry) Register(command string, fn DecodeFunc) {
	reg.decoders[command] = fn
}

// Decode dispatches env to the decoder registered for its command. A
// command with no decoder resolves to *Opaque and never fails; a decode
// failure for a registered command is fatal for the frame.
func (reg *Registry) Decode(env Envelope) (Message, error) {
	fn, ok := reg.decoders[env.Command]
	if !ok {
		return &Opaque{Cmd: env.Command, Payload: env.Payload}, nil
	}
	msg, err := fn(env.Payload)
	if err != nil {
		return nil, fmt.Errorf("wire: decode %q payload: %w", env.Command, err)
	}
	return msg, nil
}

// ReadMessage reads one frame from r and dispatches it through reg.
func (reg *Registry) ReadMessage(r io.Reader, net Network, limits Limits) (Message, error) {
	env, err := ReadEnvelope(r, net, limits)
	if err != nil {
		return nil, err
	}
	return reg.Decode(env)
}

func decodeInto(msg Message, payload []byte) (Message, error) {
	if err := msg.Decode(bytes.NewReader(payload)); err != nil {
		return nil, err
	}
	return msg, nil
}

// CoreRegistry returns a registry covering every command this package
// ships a codec for. Commands whose payloads need chain types (block,
// tx, headers, merkleblock, filterload) stay unregistered and surface
// as *Opaque.
func CoreRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(CmdVersion, func(p []byte) (Message, error) { return decodeInto(&MsgVersion{}, p) })
	reg.Register(CmdVerAck, func(p []byte) (Message, error) { return decodeInto(&MsgVerAck{}, p) })
	reg.Register(CmdGetAddr, func(p []byte) (Message, error) { return decodeInto(&MsgGetAddr{}, p) })
	reg.Register(CmdAddr, func(p []byte) (Message, error) { return decodeInto(&MsgAddr{}, p) })
	reg.Register(CmdGetBlocks, func(p []byte) (Message, error) { return decodeInto(&MsgGetBlocks{}, p) })
	reg.Register(CmdGetHeaders, func(p []byte) (Message, error) { return decodeInto(&MsgGetHeaders{}, p) })
	reg.Register(CmdInv, func(p []byte) (Message, error) { return decodeInto(&MsgInv{}, p) })
	reg.Register(CmdGetData, func(p []byte) (Message, error) { return decodeInto(&MsgGetData{}, p) })
	reg.Register(CmdNotFound, func(p []byte) (Message, error) { return decodeInto(&MsgNotFound{}, p) })
	reg.Register(CmdPing, func(p []byte) (Message, error) { return decodeInto(&MsgPing{}, p) })
	reg.Register(CmdPong, func(p []byte) (Message, error) { return decodeInto(&MsgPong{}, p) })
	reg.Register(CmdMemPool, func(p []byte) (Message, error) { return decodeInto(&MsgMemPool{}, p) })
	return reg
}
