package util

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
)

const (
	posterMaxWidth  = 600
	posterMaxHeight = 900
)

// NormalizePoster 解码海报图片，等比缩放到上限尺寸内并重新编码为 JPEG
func NormalizePoster(reader io.Reader) (io.Reader, int64, error) {
	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, fmt.Errorf("解码图片失败: %w", err)
	}

	fitted := imaging.Fit(img, posterMaxWidth, posterMaxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, fitted, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, 0, fmt.Errorf("编码图片失败: %w", err)
	}

	return &buf, int64(buf.Len()), nil
}

// GetSafeContentType 嗅探文件头识别类型，不信任客户端声明的 Content-Type
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	head := make([]byte, 512)
	n, err := reader.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}
