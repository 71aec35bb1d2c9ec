package api

import (
	"io"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "autivision/gen"
	"autivision/service"
)

// ScreeningServer exposes the single-image classification over gRPC: the
// client streams an ImageInfo header followed by image chunks, the server
// replies with one classification.
type ScreeningServer struct {
	pb.UnimplementedScreeningServiceServer
	screening *service.Screening
}

func NewScreeningServer(screening *service.Screening) *ScreeningServer {
	return &ScreeningServer{
		screening: screening,
	}
}

func (s *ScreeningServer) AnalyzeImage(stream grpc.ClientStreamingServer[pb.AnalyzeImageRequest, pb.AnalyzeImageResponse]) error {
	var imageData []byte

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch payload := req.RequestPayload.(type) {
		case *pb.AnalyzeImageRequest_Info:
			_ = payload.Info
		case *pb.AnalyzeImageRequest_Chunk:
			imageData = append(imageData, payload.Chunk...)
		}
	}

	if len(imageData) == 0 {
		return status.Error(codes.InvalidArgument, "no image data received")
	}

	score, err := s.screening.Score(stream.Context(), imageData)
	if err != nil {
		if service.IsUserError(err) {
			return status.Errorf(codes.InvalidArgument, "cannot decode image: %v", err)
		}
		return status.Errorf(codes.Internal, "inference failed: %v", err)
	}

	response := &pb.AnalyzeImageResponse{
		AnalysisId:        uuid.New().String(),
		AnalysisTimestamp: timestamppb.New(time.Now()),
		Result: &pb.ScreeningResult{
			Label:        service.Label(score),
			PAutistic:    1 - score,
			PNonAutistic: score,
		},
	}

	return stream.SendAndClose(response)
}
