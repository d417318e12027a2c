package serve

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/context"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"k8s.io/klog/v2"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/cmd/internal/opt"
	"github.com/nelhage/connect4/connect4"
	"github.com/nelhage/connect4/notation"
	"github.com/nelhage/connect4/pb"
	"github.com/nelhage/connect4/symmetry"
)

// Server implements pb.Connect4Server. Each request gets its own
// player, so requests run concurrently.
type Server struct {
	// Cache, if set, stores Analyze results by canonical position.
	Cache Cache
	// MaxDepth bounds requested search depths; 0 means unbounded.
	MaxDepth int
}

func (s *Server) parse(pos string) (*connect4.Board, error) {
	b, err := notation.ParsePosition(pos)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "position: %v", err)
	}
	return b, nil
}

func cacheKey(b *connect4.Board, depth int, piece connect4.Piece) string {
	return fmt.Sprintf("connect4:analyze:%s:%d:%s", notation.FormatPosition(b), depth, piece)
}

func (s *Server) Analyze(ctx context.Context, req *pb.AnalyzeRequest) (*pb.AnalyzeResponse, error) {
	b, err := s.parse(req.GetPosition())
	if err != nil {
		return nil, err
	}
	piece := b.ToMove()
	if req.GetPiece() != "" {
		if piece, err = notation.ParsePiece(req.GetPiece()); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "piece: %v", err)
		}
	}
	depth := int(req.GetDepth())
	if depth == 0 {
		depth = ai.DefaultDepth
	}
	if depth < 0 || (s.MaxDepth > 0 && depth > s.MaxDepth) {
		return nil, status.Errorf(codes.InvalidArgument, "depth %d out of range", depth)
	}

	canon, mirrored := symmetry.Canonical(b)
	key := cacheKey(canon, depth, piece)
	if s.Cache != nil {
		if resp, ok := s.Cache.Get(ctx, key); ok {
			klog.V(1).Infof("[serve] cache hit %s", key)
			return orient(resp, b.Columns(), mirrored), nil
		}
	}

	m := ai.NewMinimax(b, ai.MinimaxConfig{Piece: piece, Depth: depth})
	col, val, st := m.Analyze()
	resp := &pb.AnalyzeResponse{
		Column:    int32(col),
		Value:     val,
		Visited:   int64(st.Visited),
		Evaluated: int64(st.Evaluated),
	}
	if col != connect4.NoColumn {
		resp.Move = notation.FormatMove(col)
	}
	if s.Cache != nil {
		s.Cache.Put(ctx, key, orient(resp, b.Columns(), mirrored))
	}
	return resp, nil
}

// orient maps a response between a board and its mirror image.
func orient(resp *pb.AnalyzeResponse, cols int, mirrored bool) *pb.AnalyzeResponse {
	out := *resp
	if mirrored && out.Column != connect4.NoColumn {
		out.Column = int32(symmetry.MirrorColumn(cols, int(out.Column)))
		out.Move = notation.FormatMove(int(out.Column))
	}
	return &out
}

func (s *Server) Move(ctx context.Context, req *pb.MoveRequest) (*pb.MoveResponse, error) {
	b, err := s.parse(req.GetPosition())
	if err != nil {
		return nil, err
	}
	spec := req.GetStrategy()
	if spec == "" {
		spec = "minimax"
	}
	if req.GetSeed() != 0 && !strings.Contains(spec, ":") && spec != "minimax" {
		spec = fmt.Sprintf("%s:%d", spec, req.GetSeed())
	}
	if name, arg, ok := strings.Cut(spec, ":"); ok && name == "minimax" && s.MaxDepth > 0 {
		if d, err := strconv.Atoi(arg); err != nil || d > s.MaxDepth {
			return nil, status.Errorf(codes.InvalidArgument, "strategy %q: depth out of range", spec)
		}
	}
	p, err := opt.NewPlayer(spec, b, b.ToMove(), ai.DefaultDepth)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "strategy: %v", err)
	}
	col, err := p.GetMove(ctx)
	switch {
	case errors.Is(err, ai.ErrGameOver), errors.Is(err, ai.ErrNoLegalMoves):
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	case err != nil:
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.MoveResponse{Column: int32(col), Move: notation.FormatMove(col)}, nil
}
