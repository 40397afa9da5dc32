package oracle

import (
	"context"
	"fmt"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var _ SmartQuerier = (*GRPCQuerier)(nil)

// GRPCQuerier runs smart queries against a remote wasm node.
type GRPCQuerier struct {
	conn   *grpc.ClientConn
	client wasmtypes.QueryClient
}

// DialGRPC connects to a node's gRPC endpoint, e.g. "localhost:9090".
func DialGRPC(endpoint string) (*GRPCQuerier, error) {
	conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", endpoint, err)
	}
	return NewGRPCQuerier(conn), nil
}

func NewGRPCQuerier(conn *grpc.ClientConn) *GRPCQuerier {
	return &GRPCQuerier{conn: conn, client: wasmtypes.NewQueryClient(conn)}
}

func (q *GRPCQuerier) QuerySmart(ctx context.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error) {
	res, err := q.client.SmartContractState(ctx, &wasmtypes.QuerySmartContractStateRequest{
		Address:   contractAddr.String(),
		QueryData: req,
	})
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (q *GRPCQuerier) Close() error {
	if q.conn == nil {
		return nil
	}
	return q.conn.Close()
}
