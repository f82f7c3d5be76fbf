package rpc

import (
	"context"
	"fmt"
	"time"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/engine"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// #region client-struct
// Client calls a remote KittyService.
type Client struct {
	conn     *grpc.ClientConn
	cc       grpc.ClientConnInterface
	identity string
}
// #endregion client-struct

// #region constructor
// NewClient connects to a KittyService at addr.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, cc: conn}, nil
}

// NewClientWithConn wraps an existing connection. Close does not close cc.
func NewClientWithConn(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// WithIdentity returns a copy of c that sends identity with every call.
func (c *Client) WithIdentity(identity string) *Client {
	cp := *c
	cp.identity = identity
	return &cp
}
// #endregion constructor

// #region close
// Close shuts down the connection if the client owns it.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
// #endregion close

// #region calls
func (c *Client) invoke(ctx context.Context, method string, in, out any) error {
	if c.identity != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, IdentityHeader, c.identity)
	}
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out); err != nil {
		return fmt.Errorf("%s rpc: %w", method, err)
	}
	return nil
}

// Greet calls the stateless greeting.
func (c *Client) Greet(ctx context.Context, name string) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.invoke(ctx, MethodGreet, wrapperspb.String(name), out); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

// QuantumGreet greets name in the server's current tone.
func (c *Client) QuantumGreet(ctx context.Context, name string) (engine.GreetResult, error) {
	out := new(structpb.Struct)
	if err := c.invoke(ctx, MethodQuantumGreet, wrapperspb.String(name), out); err != nil {
		return engine.GreetResult{}, err
	}
	cond, intensity, tone := stateFields(out)
	return engine.GreetResult{
		Greeting:  field(out, "greeting"),
		Condition: cond,
		Intensity: intensity,
		Tone:      tone,
	}, nil
}

// RefreshState forces a refresh on the server.
func (c *Client) RefreshState(ctx context.Context) (state.Vector, error) {
	out := new(structpb.Struct)
	if err := c.invoke(ctx, MethodRefreshState, &emptypb.Empty{}, out); err != nil {
		return state.Vector{}, err
	}
	cond, intensity, tone := stateFields(out)
	derived, _ := time.Parse(time.RFC3339, field(out, "derived_at"))
	return state.Vector{Condition: cond, Intensity: intensity, Tone: tone, DerivedAt: derived}, nil
}

// AddTemplate adds text to category. The bool reports whether it was new.
func (c *Client) AddTemplate(ctx context.Context, category, text string) (bool, error) {
	return c.add(ctx, MethodAddTemplate, map[string]string{"category": category, "text": text})
}

// AddConditionAdjective adds word to a condition's adjectives.
func (c *Client) AddConditionAdjective(ctx context.Context, condition, word string) (bool, error) {
	return c.add(ctx, MethodAddConditionAdjective, map[string]string{"condition": condition, "word": word})
}

// AddTonePhrase adds phrase to a tone's phrases.
func (c *Client) AddTonePhrase(ctx context.Context, tone, phrase string) (bool, error) {
	return c.add(ctx, MethodAddTonePhrase, map[string]string{"tone": tone, "phrase": phrase})
}

func (c *Client) add(ctx context.Context, method string, fields map[string]string) (bool, error) {
	in := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(fields))}
	for k, v := range fields {
		in.Fields[k] = structpb.NewStringValue(v)
	}
	out := new(wrapperspb.BoolValue)
	if err := c.invoke(ctx, method, in, out); err != nil {
		return false, err
	}
	return out.GetValue(), nil
}

// TemplatesFor lists a category's templates.
func (c *Client) TemplatesFor(ctx context.Context, category string) ([]string, error) {
	out := new(structpb.ListValue)
	if err := c.invoke(ctx, MethodGetTemplatesForCategory, wrapperspb.String(category), out); err != nil {
		return nil, err
	}
	list := make([]string, 0, len(out.GetValues()))
	for _, v := range out.GetValues() {
		list = append(list, v.GetStringValue())
	}
	return list, nil
}

// ComposeWisdom asks the server to compose wisdom for subject.
func (c *Client) ComposeWisdom(ctx context.Context, subject string, topics []string) (engine.WisdomResult, error) {
	values := make([]*structpb.Value, len(topics))
	for i, t := range topics {
		values[i] = structpb.NewStringValue(t)
	}
	in := &structpb.Struct{Fields: map[string]*structpb.Value{
		"subject": structpb.NewStringValue(subject),
		"topics":  structpb.NewListValue(&structpb.ListValue{Values: values}),
	}}
	out := new(structpb.Struct)
	if err := c.invoke(ctx, MethodComposeWisdom, in, out); err != nil {
		return engine.WisdomResult{}, err
	}
	cond, intensity, tone := stateFields(out)
	return engine.WisdomResult{
		Content:   field(out, "content"),
		Condition: cond,
		Intensity: intensity,
		Tone:      tone,
	}, nil
}

// SaveKittyName binds the client identity to name.
func (c *Client) SaveKittyName(ctx context.Context, name string) error {
	return c.invoke(ctx, MethodSaveKittyName, wrapperspb.String(name), new(emptypb.Empty))
}

// GetKittyName returns the name bound to the client identity, if any.
func (c *Client) GetKittyName(ctx context.Context) (string, bool, error) {
	out := new(structpb.Struct)
	if err := c.invoke(ctx, MethodGetKittyName, &emptypb.Empty{}, out); err != nil {
		return "", false, err
	}
	return field(out, "name"), out.GetFields()["found"].GetBoolValue(), nil
}
// #endregion calls

// #region helpers
func stateFields(s *structpb.Struct) (state.Condition, int, state.Tone) {
	return state.Condition(field(s, "condition")),
		int(s.GetFields()["intensity"].GetNumberValue()),
		state.Tone(field(s, "tone"))
}
// #endregion helpers
