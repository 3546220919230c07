package tabletest

import (
	"context"
	"errors"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/mtiwari1/tableloader/proto"
)

const bufSize = 1024 * 1024

// Start serves srv on an in-memory listener and returns a client connection
// to it. Both are torn down when the test finishes.
func Start(t testing.TB, srv pb.TableServiceServer) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	server := grpc.NewServer()
	pb.RegisterTableServiceServer(server, srv)

	go func() {
		if err := server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			t.Logf("table service exited with error: %v", err)
		}
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufnet: %v", err)
	}

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
		_ = lis.Close()
	})
	return conn
}
