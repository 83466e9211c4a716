package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/disintegration/imaging"

	"shaban/pkg/plate"
)

// RekognitionEngine uses AWS Rekognition DetectText. The raw photo is sent
// as-is (JPEG): Rekognition does its own preprocessing and local
// thresholding tends to hurt it rather than help.
type RekognitionEngine struct {
	client *rekognition.Client
}

func NewRekognition(ctx context.Context, region string) (*RekognitionEngine, error) {
	var optFns []func(*awsconfig.LoadOptions) error
	if region != "" {
		optFns = append(optFns, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &RekognitionEngine{client: rekognition.NewFromConfig(cfg)}, nil
}

func (e *RekognitionEngine) Name() string { return "Rekognition" }

func (e *RekognitionEngine) Confidence() int { return 90 }

func (e *RekognitionEngine) Recognize(ctx context.Context, img image.Image) ([]plate.Line, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	out, err := e.client.DetectText(ctx, &rekognition.DetectTextInput{
		Image: &types.Image{Bytes: buf.Bytes()},
	})
	if err != nil {
		return nil, fmt.Errorf("rekognition detect text: %w", err)
	}
	var lines []plate.Line
	for _, td := range out.TextDetections {
		if td.Type != types.TextTypesLine {
			continue
		}
		if td.DetectedText == nil || td.Confidence == nil {
			continue
		}
		lines = append(lines, plate.Line{
			Text:       *td.DetectedText,
			Confidence: float64(*td.Confidence) / 100,
		})
	}
	return lines, nil
}

func (e *RekognitionEngine) Close() error { return nil }
