package api

import (
	"context"
	"io"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "autivision/gen"
	"autivision/service"
	"autivision/storage"
)

type fakeAnalyzeStream struct {
	grpc.ServerStream
	requests []*pb.AnalyzeImageRequest
	next     int
	response *pb.AnalyzeImageResponse
}

func (f *fakeAnalyzeStream) Recv() (*pb.AnalyzeImageRequest, error) {
	if f.next >= len(f.requests) {
		return nil, io.EOF
	}
	req := f.requests[f.next]
	f.next++
	return req, nil
}

func (f *fakeAnalyzeStream) SendAndClose(resp *pb.AnalyzeImageResponse) error {
	f.response = resp
	return nil
}

func (f *fakeAnalyzeStream) Context() context.Context {
	return context.Background()
}

func newGRPCServer(t *testing.T, scores []float32) *ScreeningServer {
	t.Helper()
	store, err := storage.NewWorkdir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewScreeningServer(service.NewScreening(store, &stubClassifier{scores: scores}))
}

func chunked(data []byte, size int) []*pb.AnalyzeImageRequest {
	reqs := []*pb.AnalyzeImageRequest{
		{RequestPayload: &pb.AnalyzeImageRequest_Info{Info: &pb.ImageInfo{Filename: "face.png"}}},
	}
	for len(data) > 0 {
		n := size
		if n > len(data) {
			n = len(data)
		}
		reqs = append(reqs, &pb.AnalyzeImageRequest{
			RequestPayload: &pb.AnalyzeImageRequest_Chunk{Chunk: data[:n]},
		})
		data = data[n:]
	}
	return reqs
}

func TestAnalyzeImageStream(t *testing.T) {
	server := newGRPCServer(t, []float32{0.2})
	stream := &fakeAnalyzeStream{requests: chunked(pngBytes(t), 64)}

	if err := server.AnalyzeImage(stream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stream.response == nil {
		t.Fatal("expected a response")
	}
	result := stream.response.GetResult()
	if result.GetLabel() != "non-autistic" {
		t.Fatalf("expected non-autistic, got %s", result.GetLabel())
	}
	if result.GetPNonAutistic() != 0.2 {
		t.Fatalf("expected 0.2, got %f", result.GetPNonAutistic())
	}
	if result.GetPAutistic() != 0.8 {
		t.Fatalf("expected 0.8, got %f", result.GetPAutistic())
	}
	if stream.response.GetAnalysisId() == "" {
		t.Fatal("expected an analysis id")
	}
}

func TestAnalyzeImageRejectsEmptyStream(t *testing.T) {
	server := newGRPCServer(t, nil)
	stream := &fakeAnalyzeStream{}

	err := server.AnalyzeImage(stream)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestAnalyzeImageRejectsNonImage(t *testing.T) {
	server := newGRPCServer(t, nil)
	stream := &fakeAnalyzeStream{requests: chunked([]byte("not an image"), 4)}

	err := server.AnalyzeImage(stream)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
