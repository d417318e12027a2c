// Package pb is the wire surface of the analysis server. The types are
// maintained by hand to match connect4.proto: field numbers and wire
// types live in the protobuf struct tags, which golang/protobuf reads
// when marshalling. Keep the two in sync when either changes.
package pb

import (
	"github.com/golang/protobuf/proto"
)

type AnalyzeRequest struct {
	Position string `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	Depth    int32  `protobuf:"varint,2,opt,name=depth,proto3" json:"depth,omitempty"`
	Piece    string `protobuf:"bytes,3,opt,name=piece,proto3" json:"piece,omitempty"`
}

func (m *AnalyzeRequest) Reset()         { *m = AnalyzeRequest{} }
func (m *AnalyzeRequest) String() string { return proto.CompactTextString(m) }
func (*AnalyzeRequest) ProtoMessage()    {}

func (m *AnalyzeRequest) GetPosition() string {
	if m != nil {
		return m.Position
	}
	return ""
}

func (m *AnalyzeRequest) GetDepth() int32 {
	if m != nil {
		return m.Depth
	}
	return 0
}

func (m *AnalyzeRequest) GetPiece() string {
	if m != nil {
		return m.Piece
	}
	return ""
}

type AnalyzeResponse struct {
	Column    int32  `protobuf:"varint,1,opt,name=column,proto3" json:"column,omitempty"`
	Value     int64  `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
	Visited   int64  `protobuf:"varint,3,opt,name=visited,proto3" json:"visited,omitempty"`
	Evaluated int64  `protobuf:"varint,4,opt,name=evaluated,proto3" json:"evaluated,omitempty"`
	Move      string `protobuf:"bytes,5,opt,name=move,proto3" json:"move,omitempty"`
}

func (m *AnalyzeResponse) Reset()         { *m = AnalyzeResponse{} }
func (m *AnalyzeResponse) String() string { return proto.CompactTextString(m) }
func (*AnalyzeResponse) ProtoMessage()    {}

func (m *AnalyzeResponse) GetColumn() int32 {
	if m != nil {
		return m.Column
	}
	return 0
}

func (m *AnalyzeResponse) GetValue() int64 {
	if m != nil {
		return m.Value
	}
	return 0
}

func (m *AnalyzeResponse) GetVisited() int64 {
	if m != nil {
		return m.Visited
	}
	return 0
}

func (m *AnalyzeResponse) GetEvaluated() int64 {
	if m != nil {
		return m.Evaluated
	}
	return 0
}

func (m *AnalyzeResponse) GetMove() string {
	if m != nil {
		return m.Move
	}
	return ""
}

type MoveRequest struct {
	Position string `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	Strategy string `protobuf:"bytes,2,opt,name=strategy,proto3" json:"strategy,omitempty"`
	Seed     int64  `protobuf:"varint,3,opt,name=seed,proto3" json:"seed,omitempty"`
}

func (m *MoveRequest) Reset()         { *m = MoveRequest{} }
func (m *MoveRequest) String() string { return proto.CompactTextString(m) }
func (*MoveRequest) ProtoMessage()    {}

func (m *MoveRequest) GetPosition() string {
	if m != nil {
		return m.Position
	}
	return ""
}

func (m *MoveRequest) GetStrategy() string {
	if m != nil {
		return m.Strategy
	}
	return ""
}

func (m *MoveRequest) GetSeed() int64 {
	if m != nil {
		return m.Seed
	}
	return 0
}

type MoveResponse struct {
	Column int32  `protobuf:"varint,1,opt,name=column,proto3" json:"column,omitempty"`
	Move   string `protobuf:"bytes,2,opt,name=move,proto3" json:"move,omitempty"`
}

func (m *MoveResponse) Reset()         { *m = MoveResponse{} }
func (m *MoveResponse) String() string { return proto.CompactTextString(m) }
func (*MoveResponse) ProtoMessage()    {}

func (m *MoveResponse) GetColumn() int32 {
	if m != nil {
		return m.Column
	}
	return 0
}

func (m *MoveResponse) GetMove() string {
	if m != nil {
		return m.Move
	}
	return ""
}

func init() {
	proto.RegisterType((*AnalyzeRequest)(nil), "connect4.AnalyzeRequest")
	proto.RegisterType((*AnalyzeResponse)(nil), "connect4.AnalyzeResponse")
	proto.RegisterType((*MoveRequest)(nil), "connect4.MoveRequest")
	proto.RegisterType((*MoveResponse)(nil), "connect4.MoveResponse")
}
