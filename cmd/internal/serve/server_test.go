package serve

import (
	"net"
	"sync"
	"testing"

	"github.com/golang/protobuf/proto"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/pb"
)

type memCache struct {
	sync.Mutex
	m    map[string][]byte
	hits int
}

func (c *memCache) Get(ctx context.Context, key string) (*pb.AnalyzeResponse, bool) {
	c.Lock()
	defer c.Unlock()
	bs, ok := c.m[key]
	if !ok {
		return nil, false
	}
	var resp pb.AnalyzeResponse
	if err := proto.Unmarshal(bs, &resp); err != nil {
		return nil, false
	}
	c.hits++
	return &resp, true
}

func (c *memCache) Put(ctx context.Context, key string, resp *pb.AnalyzeResponse) {
	c.Lock()
	defer c.Unlock()
	bs, err := proto.Marshal(resp)
	if err != nil {
		panic(err)
	}
	if c.m == nil {
		c.m = make(map[string][]byte)
	}
	c.m[key] = bs
}

const blockLeft = "x7/x7/x7/x7/x7/1,1,1,x4"
const blockRight = "x7/x7/x7/x7/x7/x4,1,1,1"

func TestAnalyze(t *testing.T) {
	s := &Server{}
	resp, err := s.Analyze(context.Background(), &pb.AnalyzeRequest{
		Position: blockLeft,
		Depth:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), resp.Column)
	assert.Equal(t, "d", resp.Move)
	assert.True(t, resp.Visited > 0)
	assert.True(t, resp.Evaluated > 0)
}

func TestAnalyzeErrors(t *testing.T) {
	s := &Server{MaxDepth: 5}
	cases := []*pb.AnalyzeRequest{
		{Position: "x7/x7"},
		{Position: blockLeft, Piece: "purple"},
		{Position: blockLeft, Depth: 6},
		{Position: blockLeft, Depth: -1},
	}
	for _, req := range cases {
		_, err := s.Analyze(context.Background(), req)
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "%v", req)
	}
}

func TestAnalyzeTerminal(t *testing.T) {
	s := &Server{}
	resp, err := s.Analyze(context.Background(), &pb.AnalyzeRequest{
		Position: "x7/x7/x7/x7/x7/2,2,2,2,1,1,1",
		Piece:    "1",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(-1), resp.Column)
	assert.Equal(t, ai.MinEval, resp.Value)
	assert.Equal(t, "", resp.Move)
}

func TestAnalyzeCacheMirrors(t *testing.T) {
	cache := &memCache{}
	s := &Server{Cache: cache}
	ctx := context.Background()

	left, err := s.Analyze(ctx, &pb.AnalyzeRequest{Position: blockLeft, Depth: 2, Piece: "2"})
	require.NoError(t, err)
	assert.Equal(t, 0, cache.hits)
	assert.Len(t, cache.m, 1)

	right, err := s.Analyze(ctx, &pb.AnalyzeRequest{Position: blockRight, Depth: 2, Piece: "2"})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, int32(3), left.Column)
	assert.Equal(t, int32(3), right.Column)
	assert.Equal(t, left.Value, right.Value)

	other, err := s.Analyze(ctx, &pb.AnalyzeRequest{Position: blockRight, Depth: 3, Piece: "2"})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, int32(3), other.Column)
}

func TestOrient(t *testing.T) {
	resp := &pb.AnalyzeResponse{Column: 1, Move: "b", Value: 7}
	got := orient(resp, 7, true)
	assert.Equal(t, int32(5), got.Column)
	assert.Equal(t, "f", got.Move)
	assert.Equal(t, int32(1), resp.Column)

	none := orient(&pb.AnalyzeResponse{Column: -1}, 7, true)
	assert.Equal(t, int32(-1), none.Column)
}

func TestMove(t *testing.T) {
	s := &Server{MaxDepth: 6}
	ctx := context.Background()

	resp, err := s.Move(ctx, &pb.MoveRequest{Position: blockLeft})
	require.NoError(t, err)
	assert.Equal(t, int32(3), resp.Column)

	resp, err = s.Move(ctx, &pb.MoveRequest{Position: blockLeft, Strategy: "random", Seed: 5})
	require.NoError(t, err)
	again, err := s.Move(ctx, &pb.MoveRequest{Position: blockLeft, Strategy: "random", Seed: 5})
	require.NoError(t, err)
	assert.Equal(t, resp.Column, again.Column)

	_, err = s.Move(ctx, &pb.MoveRequest{Position: blockLeft, Strategy: "minimax:9"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.Move(ctx, &pb.MoveRequest{Position: blockLeft, Strategy: "oracle"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.Move(ctx, &pb.MoveRequest{Position: "x7/x7/x7/x7/x7/2,2,2,2,1,1,1"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestGRPC(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := grpc.NewServer()
	pb.RegisterConnect4Server(srv, &Server{})
	go srv.Serve(lis)
	defer srv.Stop()

	conn, err := grpc.Dial(lis.Addr().String(), grpc.WithInsecure(), grpc.WithBlock())
	require.NoError(t, err)
	defer conn.Close()
	client := pb.NewConnect4Client(conn)

	resp, err := client.Analyze(context.Background(), &pb.AnalyzeRequest{Position: blockLeft, Depth: 2})
	require.NoError(t, err)
	assert.Equal(t, int32(3), resp.GetColumn())

	mv, err := client.Move(context.Background(), &pb.MoveRequest{Position: blockLeft, Strategy: "simple:1"})
	require.NoError(t, err)
	assert.Equal(t, "d", mv.GetMove())
}
