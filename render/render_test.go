package render

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesisanalytics"
	"github.com/aws/aws-sdk-go-v2/service/kinesisanalytics/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func describeOutput() *kinesisanalytics.DescribeApplicationOutput {
	return &kinesisanalytics.DescribeApplicationOutput{
		ApplicationDetail: &types.ApplicationDetail{
			ApplicationName:      sdkaws.String("orders"),
			ApplicationStatus:    types.ApplicationStatusReady,
			ApplicationVersionId: sdkaws.Int64(3),
		},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONStripsResultMetadata(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FormatJSON)

	require.NoError(t, w.Emit(describeOutput()))
	assert.NotContains(t, buf.String(), "ResultMetadata")
	assert.Contains(t, buf.String(), `"ApplicationStatus": "READY"`)
	assert.Contains(t, buf.String(), `"ApplicationVersionId": 3`)
}

func TestYAMLSeparatesDocuments(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FormatYAML)

	require.NoError(t, w.Emit(map[string]string{"a": "1"}))
	require.NoError(t, w.Emit(map[string]string{"b": "2"}))
	assert.Equal(t, "a: \"1\"\n---\nb: \"2\"\n", buf.String())
}

func TestTextFormats(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FormatText)

	require.NoError(t, w.Emit(sdkaws.String("orders")))
	require.NoError(t, w.Emit([]string{"a", "b"}))
	require.NoError(t, w.Emit(map[string]any{"Name": "x", "Count": 2, "Tags": []string{"t"}}))

	assert.Equal(t, "orders\na\nb\nCount : 2\nName  : x\nTags  : [\"t\"]\n", buf.String())
}

func TestEmitNilWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FormatJSON)

	var out *string
	require.NoError(t, w.Emit(nil))
	require.NoError(t, w.Emit(out))
	assert.Empty(t, buf.String())
}

type recordingS3 struct {
	puts map[string][]byte
}

func (r *recordingS3) GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return nil, io.EOF
}

func (r *recordingS3) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	r.puts[*in.Bucket+"/"+*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func TestS3SinkUploadsOnClose(t *testing.T) {
	client := &recordingS3{puts: map[string][]byte{}}
	sink, err := OpenSink("s3://out/run/result.json", client, nil)
	require.NoError(t, err)

	w := NewWriter(sink, FormatJSON)
	require.NoError(t, w.Emit(map[string]int{"n": 1}))
	assert.Empty(t, client.puts)

	require.NoError(t, sink.Close(context.Background()))
	assert.Equal(t, "{\n  \"n\": 1\n}\n", string(client.puts["out/run/result.json"]))
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "out.txt")
	sink, err := OpenSink("file://"+path, nil, nil)
	require.NoError(t, err)

	_, err = sink.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, sink.Close(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestOpenSinkRejectsUnknownScheme(t *testing.T) {
	_, err := OpenSink("ftp://host/out", nil, nil)
	assert.Error(t, err)

	var stdout bytes.Buffer
	sink, err := OpenSink("-", nil, &stdout)
	require.NoError(t, err)
	_, _ = sink.Write([]byte("x"))
	assert.Equal(t, "x", stdout.String())
}

func TestLargeIntegersKeepTheirDigits(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, "1234567\nCount : 2000000\nId    : 9007199254740993\n"},
		{FormatYAML, "1234567\n---\nCount: 2000000\nId: 9007199254740993\n"},
		{FormatJSON, "1234567\n{\n  \"Count\": 2000000,\n  \"Id\": 9007199254740993\n}\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf, tt.format)
			require.NoError(t, w.Emit(int64(1234567)))
			require.NoError(t, w.Emit(map[string]int64{"Count": 2000000, "Id": 9007199254740993}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestYAMLKeepsFractions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, FormatYAML).Emit(map[string]float64{"Ratio": 0.25}))
	assert.Equal(t, "Ratio: 0.25\n", buf.String())
}

type shape interface{ isShape() }

type shapeMemberCircle struct{ Value float64 }

func (*shapeMemberCircle) isShape() {}

type drawing struct {
	Name   string
	Shapes []shape
	Main   shape
	Layers map[string]shape
}

func TestRegisteredConverterRewritesNestedValues(t *testing.T) {
	RegisterConverter(func(s shape) any {
		if c, ok := s.(*shapeMemberCircle); ok {
			return map[string]float64{"Circle": c.Value}
		}
		return s
	})

	var buf bytes.Buffer
	w := NewWriter(&buf, FormatJSON)
	require.NoError(t, w.Emit(&drawing{
		Name:   "d",
		Shapes: []shape{&shapeMemberCircle{Value: 1}, nil},
		Main:   &shapeMemberCircle{Value: 2},
		Layers: map[string]shape{"top": &shapeMemberCircle{Value: 3}},
	}))
	assert.JSONEq(t, `{
		"Name": "d",
		"Shapes": [{"Circle": 1}, null],
		"Main": {"Circle": 2},
		"Layers": {"top": {"Circle": 3}}
	}`, buf.String())
}

func TestValuesWithoutConvertersEncodeUnchanged(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, FormatJSON).Emit(describeOutput()))
	assert.Contains(t, buf.String(), `"ApplicationName": "orders"`)
	assert.NotContains(t, buf.String(), "ResultMetadata")
}
