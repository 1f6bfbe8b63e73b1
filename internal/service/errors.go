package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrAmountInvalid           = errors.New("金额必须为正数")
	ErrRatingInvalid           = errors.New("评分必须在1到10之间")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserUsernameExist       = errors.New("用户名已存在")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrVideoNotFound           = errors.New("影片不存在")
	ErrVideoNotOrdered         = errors.New("影片未购买")
	ErrInsufficientFunds       = errors.New("余额不足")
	ErrUserFollowExist         = errors.New("用户已关注")
	ErrUserFollowSelf          = errors.New("用户不能关注自己")
	ErrFileNotSupported        = errors.New("不支持的文件类型")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrAmountInvalid:           BadRequest,
	ErrRatingInvalid:           BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserUsernameExist:       BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrVideoNotFound:           NotFound,
	ErrVideoNotOrdered:         NotFound,
	ErrInsufficientFunds:       BadRequest,
	ErrUserFollowExist:         BadRequest,
	ErrUserFollowSelf:          BadRequest,
	ErrFileNotSupported:        BadRequest,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}
